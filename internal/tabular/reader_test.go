package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEnvironments(t *testing.T) {
	in := strings.NewReader(
		"Environment,Host,On Campus\n" +
			"Library Cloud,AWS,yes\n" +
			"Data Center,University IT,\n")

	envs, err := ReadEnvironments(in)
	require.NoError(t, err)
	require.Len(t, envs, 2)

	assert.Equal(t, "library_cloud", envs[0].Code)
	assert.Equal(t, "Library Cloud", envs[0].Name)
	assert.Equal(t, "AWS", envs[0].Host)
	assert.True(t, envs[0].OnCampus, "non-blank On Campus is true")
	assert.False(t, envs[1].OnCampus, "blank On Campus is false")
}

func TestReadEnvironmentsSkipsBlankNames(t *testing.T) {
	in := strings.NewReader(
		"Environment,Host,On Campus\n" +
			"Library Cloud,AWS,yes\n" +
			",orphan host,yes\n" +
			"Data Center,University IT,\n")

	envs, err := ReadEnvironments(in)
	require.NoError(t, err)
	assert.Len(t, envs, 2, "3 rows with 1 blank name yield 2 records")
}

func TestReadSystems(t *testing.T) {
	in := strings.NewReader(
		"System,Environment,Descr\n" +
			"Catalog,Library Cloud,public catalog\n" +
			"Reporting,,\n" +
			",Library Cloud,row without a system name\n")

	systems, err := ReadSystems(in)
	require.NoError(t, err)
	require.Len(t, systems, 2)

	assert.Equal(t, "catalog", systems[0].Code)
	assert.Equal(t, "Library Cloud", systems[0].Environment)
	assert.Equal(t, "", systems[1].Environment)
}

func TestReadSystemsIgnoresColumnOrderAndExtras(t *testing.T) {
	// Headers are matched by name, not position; unexpected columns
	// are ignored.
	in := strings.NewReader(
		"Notes,Environment,System\n" +
			"n/a,Library Cloud,Catalog\n")

	systems, err := ReadSystems(in)
	require.NoError(t, err)
	require.Len(t, systems, 1)
	assert.Equal(t, "Catalog", systems[0].Name)
	assert.Equal(t, "Library Cloud", systems[0].Environment)
}

func TestSystemFieldsCoverConsumedColumns(t *testing.T) {
	// The schema constant must at least name the columns the reader
	// consumes.
	assert.Contains(t, SystemFields[:], colSystem)
	assert.Contains(t, SystemFields[:], colEnvironment)
}

func TestReadDataFlows(t *testing.T) {
	in := strings.NewReader(
		"source,target,mode\n" +
			"Catalog,Reporting,r\n" +
			"Acquisitions,Catalog,w\n" +
			"Acquisitions,Finance,\n")

	flows, err := ReadDataFlows(in)
	require.NoError(t, err)
	require.Len(t, flows, 3)

	assert.Equal(t, "Catalog", flows[0].Source)
	assert.Equal(t, "Reporting", flows[0].Target)
	assert.Equal(t, "r", flows[0].Mode)
	assert.Equal(t, "", flows[2].Mode, "mode is carried through verbatim")
}

func TestReadDataFlowsSkipsBlankEndpoints(t *testing.T) {
	in := strings.NewReader(
		"source,target,mode\n" +
			",Reporting,r\n" +
			"Catalog,,w\n" +
			"Catalog,Reporting,r\n")

	flows, err := ReadDataFlows(in)
	require.NoError(t, err)
	assert.Len(t, flows, 1)
}

func TestRaggedRowsTolerated(t *testing.T) {
	// A short row reads as blank in the missing columns, like a
	// spreadsheet export with trailing cells trimmed.
	in := strings.NewReader(
		"System,Environment\n" +
			"Catalog\n")

	systems, err := ReadSystems(in)
	require.NoError(t, err)
	require.Len(t, systems, 1)
	assert.Equal(t, "", systems[0].Environment)
}

func TestEmptySheet(t *testing.T) {
	systems, err := ReadSystems(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, systems)
}

func TestBadCSVPropagates(t *testing.T) {
	// An unterminated quote is a csv parse error, not a skipped row.
	in := strings.NewReader(
		"System,Environment\n" +
			"\"Catalog,Library Cloud\n")

	_, err := ReadSystems(in)
	assert.Error(t, err)
}
