package slots

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/wrapper"
	"github.com/wippyai/wrapper/errors"
	"github.com/wippyai/wrapper/internal/guest"
)

// Handler receives decoded boxed arguments and returns the result value.
// The result is ignored when the function's Result is VOID.
type Handler func(ctx context.Context, args []any) (any, error)

// Func describes a host function in terms of kinds.
type Func struct {
	Handler Handler
	Name    string
	Params  []wrapper.Kind
	// Result is KindVoid for functions without a result.
	Result wrapper.Kind
}

// Types returns the core signature. VOID is rejected as a parameter.
func (f Func) Types() (params, results []api.ValueType, err error) {
	for _, k := range f.Params {
		if k == wrapper.KindVoid {
			return nil, nil, errors.New(errors.PhaseSlots, errors.KindInvalidArgument).
				Target(f.Name).
				Detail("VOID parameter").
				Build()
		}
	}
	if params, err = Signature(f.Params); err != nil {
		return nil, nil, err
	}
	if results, err = Signature([]wrapper.Kind{f.Result}); err != nil {
		return nil, nil, err
	}
	return params, results, nil
}

// GoModuleFunc adapts f to wazero. Decoding, handler and encoding failures
// are logged and then panic, which wazero reports to the caller as a trap.
//
// OBJECT arguments are resolved but not removed; the caller that inserted
// them still owns their handles. An OBJECT result is inserted into
// opts.Refs and owned by the caller, who frees it with Release.
func (f Func) GoModuleFunc(opts Options) (api.GoModuleFunc, error) {
	if f.Handler == nil {
		return nil, errors.InvalidArgument(errors.PhaseSlots, "nil handler for "+f.Name, nil)
	}
	if _, _, err := f.Types(); err != nil {
		return nil, err
	}

	return func(ctx context.Context, _ api.Module, stack []uint64) {
		args := make([]any, len(f.Params))
		for i, k := range f.Params {
			v, err := Decode(k, stack[i], opts)
			if err != nil {
				f.trap("decode argument", err, zap.Int("index", i), zap.Stringer("kind", k))
			}
			args[i] = v
		}

		out, err := f.Handler(ctx, args)
		if err != nil {
			f.trap("handler failed", err)
		}
		if f.Result == wrapper.KindVoid {
			return
		}

		slot, err := Encode(f.Result, out, opts)
		if err != nil {
			f.trap("encode result", err, zap.Stringer("kind", f.Result))
		}
		stack[0] = slot
	}, nil
}

func (f Func) trap(msg string, err error, fields ...zap.Field) {
	Logger().Error(msg, append(fields, zap.String("func", f.Name), zap.Error(err))...)
	panic(err)
}

// HostModule collects Funcs and instantiates them as one wazero host module.
type HostModule struct {
	rt    wazero.Runtime
	name  string
	funcs []Func
	opts  Options
}

// NewHostModule starts a host module named name in rt.
func NewHostModule(rt wazero.Runtime, name string, opts Options) *HostModule {
	return &HostModule{rt: rt, name: name, opts: opts}
}

// Func adds fn, exported as fn.Name.
func (b *HostModule) Func(fn Func) *HostModule {
	b.funcs = append(b.funcs, fn)
	return b
}

// Instantiate builds the module into the runtime.
func (b *HostModule) Instantiate(ctx context.Context) (api.Module, error) {
	builder := b.rt.NewHostModuleBuilder(b.name)

	for _, f := range b.funcs {
		params, results, err := f.Types()
		if err != nil {
			return nil, err
		}
		fn, err := f.GoModuleFunc(b.opts)
		if err != nil {
			return nil, err
		}
		builder.NewFunctionBuilder().
			WithGoModuleFunction(fn, params, results).
			Export(f.Name)
		Logger().Debug("host function defined",
			zap.String("module", b.name),
			zap.String("func", f.Name),
			zap.Int("params", len(params)),
			zap.Int("results", len(results)))
	}

	return builder.Instantiate(ctx)
}

// Guest instantiates a module named name that imports every Func from the
// host module and re-exports it. Host module exports cannot be called from Go
// directly; the guest's can. Instantiate must run first.
func (b *HostModule) Guest(ctx context.Context, name string) (api.Module, error) {
	g := guest.NewBuilder(b.name)
	for _, f := range b.funcs {
		params, results, err := f.Types()
		if err != nil {
			return nil, err
		}
		g.Func(f.Name, params, results)
	}
	return b.rt.InstantiateWithConfig(ctx, g.Build(), wazero.NewModuleConfig().WithName(name))
}
