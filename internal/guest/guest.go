// Package guest builds a minimal core module that imports host functions and
// re-exports each one through a trampoline. wazero forbids calling exports of
// host modules directly, so Go callers reach host functions through it.
package guest

import (
	"github.com/tetratelabs/wazero/api"
)

type fn struct {
	name    string
	params  []api.ValueType
	results []api.ValueType
}

// Builder accumulates trampolines for functions of one host module.
type Builder struct {
	host  string
	funcs []fn
}

// NewBuilder starts a module importing from hostModule.
func NewBuilder(hostModule string) *Builder {
	return &Builder{host: hostModule}
}

// Func imports hostModule.name and exports a trampoline under the same name.
func (b *Builder) Func(name string, params, results []api.ValueType) *Builder {
	b.funcs = append(b.funcs, fn{name: name, params: params, results: results})
	return b
}

// Len reports the number of trampolines.
func (b *Builder) Len() int {
	return len(b.funcs)
}

// Build returns the binary module.
func (b *Builder) Build() []byte {
	out := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	if len(b.funcs) == 0 {
		return out
	}

	out = appendSection(out, 0x01, b.typeSection())
	out = appendSection(out, 0x02, b.importSection())
	out = appendSection(out, 0x03, b.funcSection())
	out = appendSection(out, 0x07, b.exportSection())
	out = appendSection(out, 0x0a, b.codeSection())
	return out
}

func (b *Builder) typeSection() []byte {
	section := uleb(uint32(len(b.funcs)))
	for _, f := range b.funcs {
		section = append(section, 0x60)
		section = appendTypes(section, f.params)
		section = appendTypes(section, f.results)
	}
	return section
}

func (b *Builder) importSection() []byte {
	section := uleb(uint32(len(b.funcs)))
	for i, f := range b.funcs {
		section = appendName(section, b.host)
		section = appendName(section, f.name)
		section = append(section, 0x00)
		section = append(section, uleb(uint32(i))...)
	}
	return section
}

func (b *Builder) funcSection() []byte {
	section := uleb(uint32(len(b.funcs)))
	for i := range b.funcs {
		section = append(section, uleb(uint32(i))...)
	}
	return section
}

func (b *Builder) exportSection() []byte {
	section := uleb(uint32(len(b.funcs)))
	imported := uint32(len(b.funcs))
	for i, f := range b.funcs {
		section = appendName(section, f.name)
		section = append(section, 0x00)
		section = append(section, uleb(imported+uint32(i))...)
	}
	return section
}

// codeSection emits one body per trampoline: forward every local, call the
// import with the same index, return its results.
func (b *Builder) codeSection() []byte {
	section := uleb(uint32(len(b.funcs)))
	for i, f := range b.funcs {
		body := []byte{0x00}
		for p := range f.params {
			body = append(body, 0x20)
			body = append(body, uleb(uint32(p))...)
		}
		body = append(body, 0x10)
		body = append(body, uleb(uint32(i))...)
		body = append(body, 0x0b)

		section = append(section, uleb(uint32(len(body)))...)
		section = append(section, body...)
	}
	return section
}

func appendSection(out []byte, id byte, content []byte) []byte {
	out = append(out, id)
	out = append(out, uleb(uint32(len(content)))...)
	return append(out, content...)
}

func appendName(out []byte, s string) []byte {
	out = append(out, uleb(uint32(len(s)))...)
	return append(out, s...)
}

func appendTypes(out []byte, types []api.ValueType) []byte {
	out = append(out, uleb(uint32(len(types)))...)
	for _, t := range types {
		out = append(out, valType(t))
	}
	return out
}

// valType maps wazero value types to their binary encoding.
func valType(t api.ValueType) byte {
	switch t {
	case api.ValueTypeI64:
		return 0x7e
	case api.ValueTypeF32:
		return 0x7d
	case api.ValueTypeF64:
		return 0x7c
	case api.ValueTypeExternref:
		return 0x6f
	default:
		return 0x7f
	}
}

func uleb(v uint32) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		out = append(out, b)
		if v == 0 {
			return out
		}
	}
}
