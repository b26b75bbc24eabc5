package enumname

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/codecop/internal/config"
	"github.com/sirkon/codecop/internal/coprules"
	"github.com/sirkon/codecop/internal/rename"
	"github.com/sirkon/codecop/internal/reporter"
	"github.com/sirkon/codecop/internal/spans"
)

const doc = `enumname checks that enumeration type names end with "Enum"

A named integer or string type with constants of it declared in the package is an
enumeration. Its name must end with "Enum". The suggested fix renames the type and
all its references in the package.`

// NewAnalyzer creates the UXE0001 analyzer. Config values are bound to the analyzer flags.
func NewAnalyzer(cfg *config.Config, logE *logrus.Entry) *analysis.Analyzer {
	c := &checker{
		cfg:     cfg,
		logE:    logE.WithField("rule", coprules.EnumSuffix().String()),
		renamer: rename.Engine{},
	}

	a := &analysis.Analyzer{
		Name:       "enumname",
		Doc:        doc,
		Requires:   []*analysis.Analyzer{inspect.Analyzer},
		Run:        c.run,
		ResultType: reflect.TypeFor[[]coprules.Finding](),
	}
	cfg.RegisterFlags(&a.Flags, coprules.EnumSuffix())

	return a
}

type checker struct {
	cfg     *config.Config
	logE    *logrus.Entry
	renamer rename.Renamer
}

func (c *checker) run(pass *analysis.Pass) (any, error) {
	if err := c.cfg.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var rep reporter.Reporter
	if !c.cfg.Enabled(coprules.EnumSuffix()) {
		return rep.Findings(), nil
	}

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.File)(nil),
		(*ast.TypeSpec)(nil),
	}

	withConsts := EnumTypes(pass.TypesInfo)
	idx := spans.New()
	skipped := map[*token.File]bool{}
	report := rep.Func()

	pector.Preorder(nodeFilter, func(node ast.Node) {
		switch n := node.(type) {
		case *ast.File:
			if !c.cfg.IncludeGenerated() && ast.IsGenerated(n) {
				skipped[pass.Fset.File(n.Pos())] = true
				return
			}
			idx.Add(n)

		case *ast.TypeSpec:
			if skipped[pass.Fset.File(n.Pos())] {
				return
			}
			idx.Add(n)

			obj, _ := pass.TypesInfo.Defs[n.Name].(*types.TypeName)
			f, ok := Check(Decl{
				Name: n.Name.Name,
				Pos:  n.Name.Pos(),
				End:  n.Name.End(),
				Kind: Classify(obj, withConsts),
			})
			if ok {
				report(f)
			}
		}
	})

	findings := rep.Sorted()
	snap := rename.FromPass(pass)
	for _, f := range findings {
		pass.Report(c.diagnostic(pass, idx, snap, f))
	}

	return findings, nil
}

func (c *checker) diagnostic(
	pass *analysis.Pass,
	idx *spans.Index,
	snap *rename.Snapshot,
	f coprules.Finding,
) analysis.Diagnostic {
	diag := analysis.Diagnostic{
		Pos:      f.Pos,
		End:      f.End,
		Category: f.Rule.String(),
		Message:  f.Message(),
	}

	var target rename.Target
	if spec, ok := idx.Lookup(f.Pos).(*ast.TypeSpec); ok {
		target = rename.Object(pass.TypesInfo.Defs[spec.Name])
	}

	fixed, err := Fix(context.Background(), c.renamer, snap, target, f)
	if err != nil {
		logerr.WithError(c.logE, err).WithFields(logrus.Fields{
			"type":     f.Name,
			"position": pass.Fset.Position(f.Pos).String(),
		}).Warn("no fix for the enum name")
		return diag
	}
	if !fixed.Changed() {
		c.logE.WithField("type", f.Name).Debug("type cannot be resolved, no fix offered")
		return diag
	}

	diag.SuggestedFixes = []analysis.SuggestedFix{fixed.SuggestedFix(f.Rule.FixTitle())}
	return diag
}
