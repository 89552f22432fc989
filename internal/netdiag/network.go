package netdiag

// This file defines the network model and its assembly operations.

import "strings"

var codeReplacer = strings.NewReplacer(" ", "_", ".", "_")

// ToCode derives a lower-case identifier from a display name: spaces
// and periods become underscores. The mapping is lossy; distinct names
// may yield the same code (see the package comment).
func ToCode(name string) string {
	return codeReplacer.Replace(strings.ToLower(name))
}

// An Environment is a hosting environment for software systems, drawn
// as a cluster. Systems holds the member systems in the order they
// were added to the Network.
type Environment struct {
	Code     string
	Name     string
	Host     string // hosting provider, informational only
	OnCampus bool
	Systems  []*System
}

// NewEnvironment returns an Environment whose code is derived from name.
func NewEnvironment(name, host string, onCampus bool) *Environment {
	return &Environment{
		Code:     ToCode(name),
		Name:     name,
		Host:     host,
		OnCampus: onCampus,
	}
}

// A System is a software system, drawn as a box node. Environment
// names the environment hosting it and may be blank.
type System struct {
	Code        string
	Name        string
	Environment string
}

// NewSystem returns a System whose code is derived from name.
func NewSystem(name, environment string) *System {
	return &System{
		Code:        ToCode(name),
		Name:        name,
		Environment: environment,
	}
}

// A DataFlow is a transfer of data between two systems, identified by
// their display names. Names are resolved to node codes at render
// time; nothing checks that the systems exist.
type DataFlow struct {
	Source string
	Target string
	Mode   string // "r" for read-only, anything else is a write
}

// reads reports whether the flow only reads data.
func (df *DataFlow) reads() bool { return df.Mode == "r" }

// A Network is the root aggregate: hosting environments keyed by code,
// systems not hosted in any known environment keyed by code, and the
// flat list of data flows.
//
// Order of assembly is a contract: AddEnvironment calls must precede
// AddSystem calls, which must precede AddDataFlow calls. System
// placement depends on the environments already registered.
type Network struct {
	Name      string
	Highlight string // cluster highlight color for on-campus environments

	environments map[string]*Environment
	envOrder     []string
	systems      map[string]*System
	sysOrder     []string
	dataflows    []*DataFlow
}

// DefaultHighlight is the highlight color used for on-campus
// environment clusters unless overridden.
const DefaultHighlight = "maroon"

// NewNetwork returns an empty Network with the given diagram name.
func NewNetwork(name string) *Network {
	return &Network{
		Name:         name,
		Highlight:    DefaultHighlight,
		environments: make(map[string]*Environment),
		systems:      make(map[string]*System),
	}
}

// AddEnvironment registers a hosting environment. A code collision
// silently overwrites the earlier environment, keeping its position.
func (n *Network) AddEnvironment(env *Environment) {
	if _, ok := n.environments[env.Code]; !ok {
		n.envOrder = append(n.envOrder, env.Code)
	}
	n.environments[env.Code] = env
}

// AddSystem files the system under its named environment if that
// environment is known, and otherwise keeps it as a top-level system.
// An environment name that matches nothing is treated the same as no
// environment at all.
func (n *Network) AddSystem(s *System) {
	if env, ok := n.environments[ToCode(s.Environment)]; ok {
		env.Systems = append(env.Systems, s)
		return
	}
	if _, ok := n.systems[s.Code]; !ok {
		n.sysOrder = append(n.sysOrder, s.Code)
	}
	n.systems[s.Code] = s
}

// AddDataFlow appends a data flow. Flows are never validated against
// known systems.
func (n *Network) AddDataFlow(df *DataFlow) {
	n.dataflows = append(n.dataflows, df)
}

// Environments returns the environments in the order first added.
func (n *Network) Environments() []*Environment {
	envs := make([]*Environment, len(n.envOrder))
	for i, code := range n.envOrder {
		envs[i] = n.environments[code]
	}
	return envs
}

// TopLevelSystems returns the systems outside any known environment,
// in the order first added.
func (n *Network) TopLevelSystems() []*System {
	systems := make([]*System, len(n.sysOrder))
	for i, code := range n.sysOrder {
		systems[i] = n.systems[code]
	}
	return systems
}

// DataFlows returns the data flows in the order added.
func (n *Network) DataFlows() []*DataFlow {
	return n.dataflows
}
