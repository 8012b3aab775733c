package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/wrapper"
	"github.com/wippyai/wrapper/slots"
	"github.com/wippyai/wrapper/witmap"
)

func main() {
	var (
		from        = flag.String("from", "", "Source kind for a convertibility check")
		to          = flag.String("to", "", "Target kind for a convertibility check")
		kindName    = flag.String("kind", "", "Kind to wrap into (name, tag or WIT type)")
		wrapArg     = flag.String("wrap", "", "Literal to wrap: integer, float, true/false or 'c'")
		rawArg      = flag.String("raw", "", "Raw bits to wrap (decimal or 0x hex)")
		verify      = flag.Bool("verify", false, "Re-run the catalog consistency checks")
		verbose     = flag.Bool("v", false, "Development logging to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer log.Sync()
		wrapper.SetLogger(log)
		slots.SetLogger(log)
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	out := os.Stdout
	colour := term.IsTerminal(int(out.Fd()))
	width := 0
	if colour {
		if w, _, err := term.GetSize(int(out.Fd())); err == nil {
			width = w
		}
	}

	var err error
	switch {
	case *verify:
		err = runVerify(out)
	case *from != "" || *to != "":
		err = runConvertible(out, *from, *to)
	case *wrapArg != "" || *rawArg != "":
		err = runWrap(out, *kindName, *wrapArg, *rawArg)
	default:
		err = printCatalog(out, colour, width)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runVerify(w io.Writer) error {
	if err := wrapper.Verify(); err != nil {
		return err
	}
	fmt.Fprintf(w, "catalog ok: %d kinds\n", len(wrapper.Kinds()))
	return nil
}

func runConvertible(w io.Writer, from, to string) error {
	if from == "" || to == "" {
		return fmt.Errorf("both -from and -to are required")
	}
	src, err := parseKind(from)
	if err != nil {
		return err
	}
	dst, err := parseKind(to)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s <- %s: %t\n", dst, src, dst.IsConvertibleFrom(src))
	return nil
}

func runWrap(w io.Writer, kindName, wrapArg, rawArg string) error {
	if kindName == "" {
		return fmt.Errorf("-kind is required with -wrap and -raw")
	}
	k, err := parseKind(kindName)
	if err != nil {
		return err
	}

	var value any
	if rawArg != "" {
		bits, err := parseBits(rawArg)
		if err != nil {
			return err
		}
		value = k.WrapRaw(bits)
	} else {
		lit, err := parseLiteral(wrapArg)
		if err != nil {
			return err
		}
		if value, err = k.Wrap(lit); err != nil {
			return err
		}
	}

	for _, line := range describe(k, value) {
		fmt.Fprintln(w, line)
	}
	return nil
}

// describe renders a boxed value with its raw bits, stack slot and WIT type.
func describe(k wrapper.Kind, value any) []string {
	lines := []string{fmt.Sprintf("%s: %s", k, formatValue(value))}
	if !k.IsNumeric() {
		return lines
	}
	if raw, err := k.UnwrapRaw(value); err == nil {
		lines = append(lines, fmt.Sprintf("raw: %#x", uint64(raw)&bitMask(k)))
	}
	opts := slots.DefaultOptions()
	opts.AllowNarrowing = true
	if slot, err := slots.Encode(k, value, opts); err == nil {
		vt, _ := slots.ValueType(k)
		lines = append(lines, fmt.Sprintf("slot: %#x (%s)", slot, api.ValueTypeName(vt)))
	}
	if name := witmap.TypeName(k); name != "" {
		lines = append(lines, "wit: "+name)
	}
	return lines
}

func bitMask(k wrapper.Kind) uint64 {
	if k.BitWidth() >= 64 {
		return math.MaxUint64
	}
	return 1<<k.BitWidth() - 1
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case wrapper.Char:
		return fmt.Sprintf("%d %q", uint16(v), rune(v))
	case wrapper.Boolean:
		return strconv.FormatBool(bool(v))
	}
	return fmt.Sprintf("%v", v)
}

// parseKind accepts a kind name (INT), a tag (I) or a WIT type (s32).
func parseKind(s string) (wrapper.Kind, error) {
	for _, k := range wrapper.Kinds() {
		if strings.EqualFold(s, k.String()) || strings.EqualFold(s, k.SimpleName()) {
			return k, nil
		}
	}
	if len(s) == 1 {
		return wrapper.ForBasicType(s[0])
	}
	return witmap.ParseKind(s)
}

// parseLiteral turns a command-line literal into a Go value for Wrap.
func parseLiteral(s string) (any, error) {
	switch s {
	case "":
		return nil, fmt.Errorf("empty literal")
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	if len(s) >= 3 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, size := utf8.DecodeRuneInString(s[1 : len(s)-1])
		if r == utf8.RuneError || size != len(s)-2 || r > math.MaxUint16 {
			return nil, fmt.Errorf("bad character literal %s", s)
		}
		return wrapper.Char(r), nil
	}
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	return nil, fmt.Errorf("cannot parse literal %q", s)
}

func parseBits(s string) (int64, error) {
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return i, nil
	}
	u, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("bad raw bits %q: %w", s, err)
	}
	return int64(u), nil
}

func printCatalog(w io.Writer, colour bool, width int) error {
	headerStyle := lipgloss.NewStyle().Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	if colour {
		headerStyle = headerStyle.Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("KIND", "TAG", "PRIMITIVE", "BOXED", "BITS", "SLOTS", "CLASS", "WIT").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	if width > 0 {
		t = t.Width(width)
	}
	for _, k := range wrapper.Kinds() {
		wit := witmap.TypeName(k)
		if wit == "" {
			wit = "-"
		}
		t.Row(
			k.String(),
			string(rune(k.Tag())),
			k.PrimitiveType().String(),
			k.BoxedType().String(),
			strconv.Itoa(k.BitWidth()),
			strconv.Itoa(k.StackSlots()),
			className(k),
			wit,
		)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func className(k wrapper.Kind) string {
	switch {
	case !k.IsNumeric():
		return "other"
	case k.IsFloating():
		return "floating"
	case k.IsSigned():
		return "signed"
	}
	return "unsigned"
}
