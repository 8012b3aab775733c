// Package slots moves catalog values across a wazero value stack.
//
// Every kind except VOID maps onto one core value type:
//
//	BOOLEAN BYTE SHORT CHAR INT  -> i32
//	LONG                         -> i64
//	FLOAT                        -> f32
//	DOUBLE                       -> f64
//	OBJECT                       -> externref (a refs.Handle)
//
// Encode converts a Go value into the kind and packs its raw bits into a
// stack slot; Decode reverses that. Sub-int kinds are truncated on decode,
// so a BYTE parameter sees only the low eight bits of its i32 slot.
//
// # Host Functions
//
// Func describes a host function by kinds and adapts a plain Go handler to
// api.GoModuleFunc:
//
//	opts := slots.DefaultOptions()
//	mod, err := slots.NewHostModule(rt, "env", opts).
//		Func(slots.Func{
//			Name:   "widen",
//			Params: []wrapper.Kind{wrapper.KindInt},
//			Result: wrapper.KindLong,
//			Handler: func(ctx context.Context, args []any) (any, error) {
//				return args[0], nil
//			},
//		}).
//		Instantiate(ctx)
//
// Results are converted without narrowing unless Options.AllowNarrowing is
// set. A handler error, or a value that cannot be encoded, traps the call.
//
// wazero does not let Go call a host module's exports. HostModule.Guest
// instantiates a small module that imports each Func and re-exports it, so
// the functions can be invoked with api.Module.ExportedFunction.
//
// # Handle Ownership
//
// An OBJECT crosses the stack as a refs.Handle in Options.Refs. Encode
// inserts a new entry for every OBJECT it packs, including host function
// results, and nothing removes it implicitly. The receiver owns the handle
// and frees it with Release (or refs.Table.Remove) once the value is no
// longer needed. Decode resolves a handle without freeing it.
package slots
