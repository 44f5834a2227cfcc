// Package orchestrator coordinates the registry and the resolver to
// produce the full definitions document.
package orchestrator

import (
	"fmt"
	"runtime"

	"github.com/go-openapi/spec"
	"golang.org/x/sync/errgroup"

	"github.com/docblock/schemagen/internal/registry"
	"github.com/docblock/schemagen/internal/resolver"
)

// Service resolves every registered root type into a schema definition.
type Service struct {
	registry *registry.Service
	resolver *resolver.Service
}

// New creates an orchestrator over the given registry.
func New(reg *registry.Service) *Service {
	return &Service{
		registry: reg,
		resolver: resolver.NewService(reg),
	}
}

// ResolveAll resolves all registered types concurrently using an
// errgroup bounded by the number of CPUs. Each resolution is independent
// and purely functional, so results land in per-type slots and the
// output is deterministic regardless of scheduling order.
func (s *Service) ResolveAll() (spec.Definitions, error) {
	names := s.registry.Names()
	results := make([]*spec.Schema, len(names))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, name := range names {
		i, name := i, name

		g.Go(func() error {
			def, _ := s.registry.Definition(name)
			resolved, err := s.resolver.Resolve(name, def.Description)
			if err != nil {
				return fmt.Errorf("failed to resolve type %s: %w", name, err)
			}
			results[i] = resolved
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	definitions := make(spec.Definitions, len(names))
	for i, name := range names {
		definitions[name] = *results[i]
	}
	return definitions, nil
}

// Resolver exposes the underlying resolver, for callers that embed
// single fragments instead of whole documents.
func (s *Service) Resolver() *resolver.Service {
	return s.resolver
}
