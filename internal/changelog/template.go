package changelog

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Placeholder names available to the link templates.
const (
	VarRepositoryURI = "repositoryUri"
	VarBase          = "base"
	VarLatest        = "latest"
	VarCommit        = "commit"
)

// DiffVariables are the placeholders available to the diff link template.
var DiffVariables = []string{VarRepositoryURI, VarBase, VarLatest}

// CommitVariables are the placeholders available to the commit link template.
var CommitVariables = []string{VarRepositoryURI, VarCommit}

// TemplateError reports a link template that failed to parse or referenced an
// undefined placeholder.
type TemplateError struct {
	// Name identifies the configured template (e.g. "diff_format").
	Name string
	// Template is the raw template text.
	Template string
	// Variables lists the placeholders the template may use.
	Variables []string
	Err       error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("rendering %s %q (available: %s): %v",
		e.Name, e.Template, strings.Join(e.Variables, ", "), e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// ExpandTemplate renders tmpl with Go text/template using {{.name}} placeholders.
// Referencing a key missing from vars is an error.
func ExpandTemplate(name, tmpl string, vars map[string]string) (string, error) {
	variables := make([]string, 0, len(vars))
	for _, v := range []string{VarRepositoryURI, VarBase, VarLatest, VarCommit} {
		if _, ok := vars[v]; ok {
			variables = append(variables, v)
		}
	}

	t, err := template.New(name).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", &TemplateError{Name: name, Template: tmpl, Variables: variables, Err: err}
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, vars); err != nil {
		return "", &TemplateError{Name: name, Template: tmpl, Variables: variables, Err: err}
	}

	return buf.String(), nil
}
