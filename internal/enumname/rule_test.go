package enumname

import (
	"context"
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"reflect"
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/sirkon/codecop/internal/coprules"
	"github.com/sirkon/codecop/internal/rename"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		decl Decl
		want *coprules.Finding
	}{
		{
			name: "enum without suffix",
			decl: Decl{Name: "Color", Pos: 10, End: 15, Kind: KindEnum},
			want: &coprules.Finding{
				Rule:     coprules.EnumSuffix(),
				Pos:      10,
				End:      15,
				Name:     "Color",
				Expected: "ColorEnum",
			},
		},
		{
			name: "enum with suffix",
			decl: Decl{Name: "StatusEnum", Kind: KindEnum},
		},
		{
			name: "suffix is case-sensitive",
			decl: Decl{Name: "Statusenum", Kind: KindEnum},
			want: &coprules.Finding{
				Rule:     coprules.EnumSuffix(),
				Name:     "Statusenum",
				Expected: "StatusenumEnum",
			},
		},
		{
			name: "bare suffix",
			decl: Decl{Name: "Enum", Kind: KindEnum},
		},
		{
			name: "suffix in the middle",
			decl: Decl{Name: "EnumColor", Kind: KindEnum},
			want: &coprules.Finding{
				Rule:     coprules.EnumSuffix(),
				Name:     "EnumColor",
				Expected: "EnumColorEnum",
			},
		},
		{
			name: "not an enum",
			decl: Decl{Name: "Color", Kind: KindOther},
		},
		{
			name: "alias",
			decl: Decl{Name: "Color", Kind: KindAlias},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Check(tt.decl)
			if tt.want == nil {
				if ok {
					t.Fatalf("no finding was expected, got %q", got.Message())
				}
				return
			}

			if !ok {
				t.Fatal("finding was expected")
			}
			if !reflect.DeepEqual(*tt.want, got) {
				deepequal.SideBySide(t, "finding", *tt.want, got)
				t.FailNow()
			}
		})
	}
}

func TestClassify(t *testing.T) {
	const src = `package p

type Color int
const Red Color = 0

type Name string
const Anonymous Name = ""

type Counter int

type Ratio float64
const Half Ratio = 0.5

type Alias = int
const AliasOne Alias = 1

type Flags uint8
var FlagNone Flags

type Box[T any] int
`

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", src, 0)
	if err != nil {
		t.Fatal(err)
	}
	info := &types.Info{Defs: map[*ast.Ident]types.Object{}}
	var conf types.Config
	pkg, err := conf.Check("p", fset, []*ast.File{file}, info)
	if err != nil {
		t.Fatal(err)
	}

	withConsts := EnumTypes(info)
	tests := map[string]Kind{
		"Color":   KindEnum,
		"Name":    KindEnum,
		"Counter": KindOther,
		"Ratio":   KindOther,
		"Alias":   KindAlias,
		"Flags":   KindOther,
		"Box":     KindOther,
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			obj, _ := pkg.Scope().Lookup(name).(*types.TypeName)
			if got := Classify(obj, withConsts); got != want {
				t.Errorf("got kind %s, want %s", got, want)
			}
		})
	}

	if got := Classify(nil, withConsts); got != KindOther {
		t.Errorf("nil type name must be classified as other, got %s", got)
	}
}

type recordingRenamer struct {
	reqs []rename.Request
	err  error
}

func (r *recordingRenamer) Rename(_ context.Context, snap *rename.Snapshot, req rename.Request) (*rename.Snapshot, error) {
	r.reqs = append(r.reqs, req)
	if r.err != nil {
		return snap, r.err
	}
	return snap, nil
}

func TestFix(t *testing.T) {
	pkg := types.NewPackage("example.com/p", "p")
	obj := types.NewTypeName(token.NoPos, pkg, "Color", nil)
	f := coprules.Finding{Rule: coprules.EnumSuffix(), Name: "Color", Expected: "somethingElse"}
	snap := rename.NewSnapshot(token.NewFileSet(), pkg, nil, &types.Info{})

	t.Run("appends suffix", func(t *testing.T) {
		var r recordingRenamer
		if _, err := Fix(context.Background(), &r, snap, rename.Object(obj), f); err != nil {
			t.Fatal(err)
		}
		if len(r.reqs) != 1 {
			t.Fatalf("a single rename was expected, got %d", len(r.reqs))
		}
		if r.reqs[0].NewName != "ColorEnum" {
			t.Errorf("got new name %q, want ColorEnum", r.reqs[0].NewName)
		}
	})

	t.Run("unresolved target", func(t *testing.T) {
		var r recordingRenamer
		got, err := Fix(context.Background(), &r, snap, rename.Object(nil), f)
		if err != nil {
			t.Fatal(err)
		}
		if got != snap || len(r.reqs) != 0 {
			t.Error("unresolved target must be a no-op")
		}
	})

	t.Run("rename error", func(t *testing.T) {
		r := recordingRenamer{err: rename.ErrNameCollision}
		got, err := Fix(context.Background(), &r, snap, rename.Object(obj), f)
		if !errors.Is(err, rename.ErrNameCollision) {
			t.Fatalf("collision error was expected, got %v", err)
		}
		if got != snap {
			t.Error("input snapshot was expected back on error")
		}
	})
}

func TestFix_Color(t *testing.T) {
	const src = `package colors

type Color int

const Red Color = 0

func paint(c Color) Color { return c }
`

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "colors.go", src, 0)
	if err != nil {
		t.Fatal(err)
	}
	info := &types.Info{
		Defs: map[*ast.Ident]types.Object{},
		Uses: map[*ast.Ident]types.Object{},
	}
	var conf types.Config
	pkg, err := conf.Check("colors", fset, []*ast.File{file}, info)
	if err != nil {
		t.Fatal(err)
	}

	obj := pkg.Scope().Lookup("Color").(*types.TypeName)
	f, ok := Check(Decl{Name: obj.Name(), Pos: obj.Pos(), Kind: Classify(obj, EnumTypes(info))})
	if !ok {
		t.Fatal("Color must be reported")
	}

	snap := rename.NewSnapshot(fset, pkg, []*ast.File{file}, info)
	got, err := Fix(context.Background(), rename.Engine{}, snap, rename.Object(obj), f)
	if err != nil {
		t.Fatal(err)
	}

	edits := got.Edits()
	if len(edits) != 4 {
		t.Fatalf("declaration and 3 references were expected to change, got %d edits", len(edits))
	}
	for _, e := range edits {
		if string(e.NewText) != "ColorEnum" {
			t.Errorf("unexpected replacement %q at %s", e.NewText, fset.Position(e.Pos))
		}
	}
}
