package seeder

import "fmt"

type collectionNode struct {
	name         string
	dependencies []string
}

// DependencyGraph orders collections so that referenced collections come
// before the collections referencing them.
type DependencyGraph struct {
	nodes map[string]*collectionNode
	added []string
	order []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		nodes: make(map[string]*collectionNode),
	}
}

func (g *DependencyGraph) AddCollection(name string, dependencies ...string) {
	if _, exists := g.nodes[name]; !exists {
		g.added = append(g.added, name)
	}
	g.nodes[name] = &collectionNode{name: name, dependencies: dependencies}
}

// BuildInsertionOrder returns a stable topological order. Collections without
// a relation keep the order they were added in.
func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(name string) error {
		if temp[name] {
			return fmt.Errorf("circular dependency detected involving collection: %s", name)
		}
		if visited[name] {
			return nil
		}

		node, ok := g.nodes[name]
		if !ok {
			return fmt.Errorf("unknown collection referenced: %s", name)
		}

		temp[name] = true
		for _, dep := range node.dependencies {
			if dep == name {
				continue
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		temp[name] = false
		visited[name] = true
		order = append(order, name)
		return nil
	}

	for _, name := range g.added {
		if err := visit(name); err != nil {
			return nil, err
		}
	}

	g.order = order
	return order, nil
}

// DeletionOrder is the insertion order reversed, so dependents go first.
func (g *DependencyGraph) DeletionOrder() []string {
	out := make([]string, len(g.order))
	for i, name := range g.order {
		out[len(g.order)-1-i] = name
	}
	return out
}
