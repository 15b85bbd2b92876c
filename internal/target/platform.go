package target

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/targetconf/internal/diag"
	"github.com/specialistvlad/targetconf/internal/hclast"
	"github.com/specialistvlad/targetconf/internal/option"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Platform is the execution platform the program is compiled for.
type Platform int

const (
	Auto Platform = iota
	Native
	Zephyr
	RIOT
	Pico
	FlexPRET
	Patmos
)

// Platforms enumerates the legal platform names.
var Platforms = option.New("platform", Auto,
	option.Variant[Platform]{Value: Auto, Ident: "AUTO"},
	option.Variant[Platform]{Value: Native, Ident: "NATIVE"},
	option.Variant[Platform]{Value: Zephyr, Ident: "ZEPHYR"},
	option.Variant[Platform]{Value: RIOT, Ident: "RIOT"},
	option.Variant[Platform]{Value: Pico, Ident: "PICO"},
	option.Variant[Platform]{Value: FlexPRET, Ident: "FLEXPRET"},
	option.Variant[Platform]{Value: Patmos, Ident: "PATMOS"},
)

func (p Platform) String() string {
	if !Platforms.Contains(p) {
		return fmt.Sprintf("Platform(%d)", int(p))
	}
	return Platforms.CanonicalName(p)
}

// Settable is a value that remembers whether the user provided it.
type Settable[T any] struct {
	Value     T
	SetByUser bool
}

// PlatformOptions is the value of the platform property.
type PlatformOptions struct {
	Platform Platform
	Board    Settable[string]
	BaudRate Settable[int]
	Flash    bool
}

const (
	fieldName     = "name"
	fieldBoard    = "board"
	fieldBaudRate = "baud-rate"
	fieldFlash    = "flash"
)

var platformFields = []string{fieldName, fieldBoard, fieldBaudRate, fieldFlash}

// CheckBoardIgnored fires when a board is given for a platform that has no
// notion of boards.
var CheckBoardIgnored = diag.Check{
	ID:       "platform/board-ignored",
	Summary:  "Board is ignored",
	Severity: hcl.DiagWarning,
}

// PlatformProperty selects the execution platform. It is written either as
// a bare platform name or as an object with name, board, baud-rate and flash.
var PlatformProperty = &platformProperty{}

type platformProperty struct{}

func (p *platformProperty) Name() string { return "platform" }

func (p *platformProperty) Description() string {
	return "Execution platform, optionally with board, baud-rate and flash settings."
}

func (p *platformProperty) TypeName() string {
	return strings.Join(Platforms.Names(), " | ") + " | { name, board, baud-rate, flash }"
}

func (p *platformProperty) DefaultString() string {
	return Platforms.CanonicalName(Platforms.Default())
}

func (p *platformProperty) InitialValue() PlatformOptions {
	return PlatformOptions{Platform: Platforms.Default()}
}

// FromString parses a bare platform name.
func (p *platformProperty) FromString(s string) (PlatformOptions, error) {
	platform, err := Platforms.ForName(s)
	if err != nil {
		return PlatformOptions{}, err
	}
	return PlatformOptions{Platform: platform}, nil
}

func (p *platformProperty) FromAST(expr hcl.Expression) (PlatformOptions, hcl.Diagnostics) {
	if !hclast.IsObject(expr) {
		s, diags := hclast.SingleString(expr)
		if diags.HasErrors() {
			return PlatformOptions{}, diags
		}
		opts, err := p.FromString(s)
		if err != nil {
			return PlatformOptions{}, invalidPlatform(expr, s, err)
		}
		return opts, nil
	}

	fields, diags := hclast.ObjectFields(expr)
	if diags.HasErrors() {
		return PlatformOptions{}, diags
	}

	opts := p.InitialValue()
	for _, f := range fields {
		switch f.Name {
		case fieldName:
			s, fieldDiags := hclast.SingleString(f.Expr)
			if fieldDiags.HasErrors() {
				diags = append(diags, fieldDiags...)
				continue
			}
			platform, err := Platforms.ForName(s)
			if err != nil {
				diags = append(diags, invalidPlatform(f.Expr, s, err)...)
				continue
			}
			opts.Platform = platform
		case fieldBoard:
			s, fieldDiags := hclast.SingleString(f.Expr)
			if fieldDiags.HasErrors() {
				diags = append(diags, fieldDiags...)
				continue
			}
			opts.Board = Settable[string]{Value: s, SetByUser: true}
		case fieldBaudRate:
			n, fieldDiags := decodeInt(f.Expr)
			if fieldDiags.HasErrors() {
				diags = append(diags, fieldDiags...)
				continue
			}
			if n <= 0 {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid baud-rate",
					Detail:   fmt.Sprintf("The baud-rate must be positive, got %d.", n),
					Subject:  f.Expr.Range().Ptr(),
				})
				continue
			}
			opts.BaudRate = Settable[int]{Value: n, SetByUser: true}
		case fieldFlash:
			flash, fieldDiags := decodeBool(f.Expr)
			if fieldDiags.HasErrors() {
				diags = append(diags, fieldDiags...)
				continue
			}
			opts.Flash = flash
		default:
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsupported platform option",
				Detail: fmt.Sprintf("The platform option %q is not known. Supported options are: %s.%s",
					f.Name, strings.Join(platformFields, ", "), hclast.DidYouMean(f.Name, platformFields)),
				Subject: f.NameRange.Ptr(),
			})
		}
	}
	if diags.HasErrors() {
		return PlatformOptions{}, diags
	}
	return opts, diags
}

func (p *platformProperty) ToAST(v PlatformOptions) hcl.Expression {
	return hclast.ParseTokens(p.tokens(v))
}

func (p *platformProperty) Validate(cfg *Config, r *diag.Reporter) {
	attr := cfg.Lookup(p)
	if attr == nil {
		return
	}

	opts := Get(cfg, p)
	if !opts.Board.SetByUser {
		return
	}
	switch opts.Platform {
	case Auto, Native:
		r.Check(CheckBoardIgnored, boardRange(attr),
			fmt.Sprintf("The %q platform does not use a board; %q has no effect.", opts.Platform, opts.Board.Value))
	case Zephyr, RIOT, Pico, FlexPRET, Patmos:
	}
}

func (p *platformProperty) tokens(v PlatformOptions) hclwrite.Tokens {
	name := Platforms.CanonicalName(v.Platform)
	if !v.Board.SetByUser && !v.BaudRate.SetByUser && !v.Flash {
		return hclast.StringTokens(name)
	}

	attrs := map[string]cty.Value{fieldName: cty.StringVal(name)}
	if v.Board.SetByUser {
		attrs[fieldBoard] = cty.StringVal(v.Board.Value)
	}
	if v.BaudRate.SetByUser {
		attrs[fieldBaudRate] = cty.NumberIntVal(int64(v.BaudRate.Value))
	}
	if v.Flash {
		attrs[fieldFlash] = cty.True
	}
	return hclast.ObjectTokens(attrs)
}

func (p *platformProperty) decode(expr hcl.Expression) (any, hcl.Diagnostics) {
	v, diags := p.FromAST(expr)
	return v, diags
}

func (p *platformProperty) encode(v any) hclwrite.Tokens {
	return p.tokens(v.(PlatformOptions))
}

func invalidPlatform(expr hcl.Expression, s string, err error) hcl.Diagnostics {
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Invalid platform value",
		Detail:   err.Error() + "." + hclast.DidYouMean(strings.ToLower(s), Platforms.Names()),
		Subject:  expr.Range().Ptr(),
	}}
}

// decodeInt reads a whole number, accepting numeric strings the way HCL
// converts them.
func decodeInt(expr hcl.Expression) (int, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, diags
	}
	num, err := convert.Convert(val, cty.Number)
	if err != nil || num.IsNull() {
		return 0, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid number",
			Detail:   fmt.Sprintf("Expected a number, but got %s.", val.Type().FriendlyName()),
			Subject:  expr.Range().Ptr(),
		}}
	}
	var n int
	if err := gocty.FromCtyValue(num, &n); err != nil {
		return 0, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid number",
			Detail:   fmt.Sprintf("Expected a whole number: %s.", err),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return n, nil
}

func decodeBool(expr hcl.Expression) (bool, hcl.Diagnostics) {
	s, diags := hclast.SingleString(expr)
	if diags.HasErrors() {
		return false, diags
	}
	v, err := bools.ForName(s)
	if err != nil {
		return false, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid bool",
			Detail:   err.Error() + ".",
			Subject:  expr.Range().Ptr(),
		}}
	}
	return v, nil
}

// boardRange finds the board value inside an object-valued platform
// attribute, falling back to the whole value.
func boardRange(attr *hcl.Attribute) hcl.Range {
	fields, _ := hclast.ObjectFields(attr.Expr)
	for _, f := range fields {
		if f.Name == fieldBoard {
			return f.Expr.Range()
		}
	}
	return hclast.ValueRange(attr)
}
