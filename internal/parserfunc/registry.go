// ============================================================================
// sfe - Escaped String Functions
// ============================================================================
//
// Package:     parserfunc
// Description: Function registry with localized aliases
// Author:      msto63
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package parserfunc

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/sfe/foundation/core/error"
	"github.com/msto63/sfe/foundation/core/log"
	mdwstringx "github.com/msto63/sfe/foundation/utils/stringx"
)

// Options configures registry behavior
type Options struct {
	Logger *log.Logger

	// Limits bound the built-in functions, DefaultLimits when nil
	Limits *mdwstringx.Limits

	// Aliases maps a function name to alternative names
	Aliases map[string][]string
}

// Registry dispatches invocations by function name
type Registry struct {
	functions map[string]*Definition
	aliases   map[string]string
	limits    mdwstringx.Limits
	logger    *log.Logger
	mutex     sync.RWMutex
}

// NewRegistry creates a registry holding the built-in functions and the
// configured aliases
func NewRegistry(opts Options) (*Registry, error) {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	limits := mdwstringx.DefaultLimits()
	if opts.Limits != nil {
		limits = *opts.Limits
	}

	r := &Registry{
		functions: make(map[string]*Definition),
		aliases:   make(map[string]string),
		limits:    limits,
		logger:    opts.Logger.WithField("component", "parserfunc"),
	}

	for _, def := range builtins(limits) {
		if err := r.Register(def); err != nil {
			return nil, mdwerror.Wrap(err, "failed to register builtin functions")
		}
	}

	// Sorted so that collisions are reported deterministically
	names := make([]string, 0, len(opts.Aliases))
	for name := range opts.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, alias := range opts.Aliases[name] {
			if err := r.RegisterAlias(alias, name); err != nil {
				return nil, err
			}
		}
	}

	r.logger.Debug("function registry initialized", log.Fields{
		"functionCount": len(r.functions),
		"aliasCount":    len(r.aliases),
	})

	return r, nil
}

// Register adds a function definition. Names are case-insensitive.
func (r *Registry) Register(def *Definition) error {
	if def == nil {
		return mdwerror.New("function definition cannot be nil").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parserfunc.Register")
	}
	if mdwstringx.IsBlank(def.Name) {
		return mdwerror.New("function name cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parserfunc.Register")
	}
	if def.Handler == nil {
		return mdwerror.New("function handler cannot be nil").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parserfunc.Register").
			WithDetail("function", def.Name)
	}

	name := normalizeName(def.Name)

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.taken(name) {
		return mdwerror.Newf("function %s already registered", name).
			WithCode(mdwerror.CodeDuplicateEntry).
			WithOperation("parserfunc.Register").
			WithDetail("function", name)
	}

	def.Name = name
	r.functions[name] = def

	r.logger.Trace("function registered", log.Fields{
		"function":   name,
		"paramCount": len(def.Params),
	})

	return nil
}

// RegisterAlias registers an alternative name for a registered function.
// Registering the same alias for the same function twice is a no-op.
func (r *Registry) RegisterAlias(alias, name string) error {
	if mdwstringx.IsBlank(alias) {
		return mdwerror.New("alias name cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parserfunc.RegisterAlias").
			WithDetail("function", name)
	}

	alias = normalizeName(alias)
	name = normalizeName(name)

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.functions[name]; !ok {
		return mdwerror.Newf("cannot alias unknown function %s", name).
			WithCode(mdwerror.CodeUnknownFunction).
			WithOperation("parserfunc.RegisterAlias").
			WithDetail("alias", alias)
	}
	if target, ok := r.aliases[alias]; ok && target == name {
		return nil
	}
	if r.taken(alias) {
		return mdwerror.Newf("alias %s collides with an existing name", alias).
			WithCode(mdwerror.CodeDuplicateEntry).
			WithOperation("parserfunc.RegisterAlias").
			WithDetail("alias", alias).
			WithDetail("function", name)
	}

	r.aliases[alias] = name
	return nil
}

// Resolve returns the canonical function name for name or one of its
// aliases, "" when unknown
func (r *Registry) Resolve(name string) string {
	name = normalizeName(name)

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if _, ok := r.functions[name]; ok {
		return name
	}
	return r.aliases[name]
}

// Lookup returns the definition registered under name or an alias
func (r *Registry) Lookup(name string) (*Definition, bool) {
	canonical := r.Resolve(name)
	if canonical == "" {
		return nil, false
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	def, ok := r.functions[canonical]
	return def, ok
}

// Names returns the sorted canonical function names
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns all definitions sorted by name
func (r *Registry) Definitions() []*Definition {
	names := r.Names()

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	defs := make([]*Definition, 0, len(names))
	for _, name := range names {
		if def, ok := r.functions[name]; ok {
			defs = append(defs, def)
		}
	}
	return defs
}

// AliasesOf returns the sorted aliases of a function
func (r *Registry) AliasesOf(name string) []string {
	name = normalizeName(name)

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var aliases []string
	for alias, target := range r.aliases {
		if target == name {
			aliases = append(aliases, alias)
		}
	}
	sort.Strings(aliases)
	return aliases
}

// Limits returns the bounds the built-in functions were created with
func (r *Registry) Limits() mdwstringx.Limits {
	return r.limits
}

// Invoke calls the function registered under name or an alias with raw
// positional arguments. The only error is an unknown function name.
func (r *Registry) Invoke(name string, args []string) (string, error) {
	def, ok := r.Lookup(name)
	if !ok {
		return "", mdwerror.Newf("unknown function %s", strings.TrimSpace(name)).
			WithCode(mdwerror.CodeUnknownFunction).
			WithOperation("parserfunc.Invoke").
			WithDetail("function", name)
	}

	id := uuid.NewString()
	start := time.Now()

	if r.logger.IsLevelEnabled(log.LevelTrace) {
		r.logger.Trace("function arguments", log.Fields{
			"invocationId": id,
			"function":     def.Name,
			"args":         args,
		})
	}

	result := def.Handler(normalize(def, args))

	r.logger.Debug("function invoked", log.Fields{
		"invocationId": id,
		"function":     def.Name,
		"argCount":     len(args),
	}.Merge(log.Duration("duration", time.Since(start))))

	return result, nil
}

// taken reports whether name is used by a function or an alias.
// Callers hold the mutex.
func (r *Registry) taken(name string) bool {
	if _, ok := r.functions[name]; ok {
		return true
	}
	_, ok := r.aliases[name]
	return ok
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
