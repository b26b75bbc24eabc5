package namespace

import (
	"context"
	"fmt"
	"go/ast"
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

const doc = `namespace checks that package names match the project root namespace

The expected name is set with -rootnamespace or the "rootnamespace" config value;
packages are not checked when it is absent. The suggested fix renames the package
to the project name.`

// NewAnalyzer creates the UXE0002 analyzer. Config values are bound to the analyzer flags.
func NewAnalyzer(cfg *config.Config, logE *logrus.Entry) *analysis.Analyzer {
	c := &checker{
		cfg:     cfg,
		logE:    logE.WithField("rule", coprules.NamespaceMatch().String()),
		renamer: rename.Engine{},
	}

	a := &analysis.Analyzer{
		Name:       "namespace",
		Doc:        doc,
		Requires:   []*analysis.Analyzer{inspect.Analyzer},
		Run:        c.run,
		ResultType: reflect.TypeFor[[]coprules.Finding](),
	}
	cfg.RegisterFlags(&a.Flags, coprules.NamespaceMatch())

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
	if !c.cfg.Enabled(coprules.NamespaceMatch()) {
		return rep.Findings(), nil
	}

	expected, configured := c.cfg.ExpectedNamespace()
	if !configured {
		c.logE.WithField("package", pass.Pkg.Path()).Debug("rootnamespace is not set, skipping")
		return rep.Findings(), nil
	}

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.File)(nil),
	}

	idx := spans.New()
	report := rep.Func()

	pector.Preorder(nodeFilter, func(node ast.Node) {
		file := node.(*ast.File) // Only files get here.
		if !c.cfg.IncludeGenerated() && ast.IsGenerated(file) {
			return
		}
		idx.Add(file)

		f, ok := Check(Decl{
			Name: file.Name.Name,
			Pos:  file.Name.Pos(),
			End:  file.Name.End(),
		}, expected, configured)
		if ok {
			report(f)
		}
	})

	var modulePath string
	if pass.Module != nil {
		modulePath = pass.Module.Path
	}
	projectName := c.cfg.ProjectName(modulePath)

	findings := rep.Sorted()
	snap := rename.FromPass(pass)
	for _, f := range findings {
		pass.Report(c.diagnostic(pass, idx, snap, f, projectName))
	}

	return findings, nil
}

func (c *checker) diagnostic(
	pass *analysis.Pass,
	idx *spans.Index,
	snap *rename.Snapshot,
	f coprules.Finding,
	projectName string,
) analysis.Diagnostic {
	diag := analysis.Diagnostic{
		Pos:      f.Pos,
		End:      f.End,
		Category: f.Rule.String(),
		Message:  f.Message(),
	}

	var target rename.Target
	if file, ok := idx.Lookup(f.Pos).(*ast.File); ok && file.Name.Name == pass.Pkg.Name() {
		target = rename.Package(pass.Pkg)
	}

	fixed, err := Fix(context.Background(), c.renamer, snap, target, f, projectName)
	if err != nil {
		logerr.WithError(c.logE, err).WithFields(logrus.Fields{
			"namespace": f.Name,
			"project":   projectName,
			"position":  pass.Fset.Position(f.Pos).String(),
		}).Warn("no fix for the namespace")
		return diag
	}
	if !fixed.Changed() {
		c.logE.WithFields(logrus.Fields{
			"namespace": f.Name,
			"project":   projectName,
		}).Debug("no fix offered for the namespace")
		return diag
	}

	diag.SuggestedFixes = []analysis.SuggestedFix{fixed.SuggestedFix(f.Rule.FixTitle())}
	return diag
}
