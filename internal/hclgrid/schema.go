package hclgrid

import "github.com/hashicorp/hcl/v2"

// nodeArgs represents the content of the 'arguments' block within a node.
type nodeArgs struct {
	Body hcl.Body `hcl:",remain"`
}

// nodeBlock represents a `node` block from a user's grid file: one instance
// of a function kind applied to named arguments.
type nodeBlock struct {
	Fn        string    `hcl:"fn,label"`
	Name      string    `hcl:"instance_name,label"`
	Arguments *nodeArgs `hcl:"arguments,block"`
	DependsOn []string  `hcl:"depends_on,optional"`
}

// gridFile represents the top-level structure of a user's grid file.
type gridFile struct {
	Nodes []*nodeBlock `hcl:"node,block"`
	Body  hcl.Body     `hcl:",remain"`
}
