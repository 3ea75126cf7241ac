package preview

import (
	_ "embed"
	"html/template"
	"io"
	"os"

	"github.com/pkg/browser"
)

//go:embed templates/report.html
var reportHTML string

var reportTmpl = template.Must(template.New("report").Parse(reportHTML))

// Data feeds the report template. Source text is escaped by html/template,
// so hostile input can never script the report page.
type Data struct {
	File   string
	Tokens []string
	Input  string
	Output string
	Err    string
}

func Render(w io.Writer, d Data) error {
	return reportTmpl.Execute(w, d)
}

// WriteTemp renders the report into a temporary HTML file and returns its
// path. The caller is responsible for eventual cleanup; the file lands in
// the OS temp directory on purpose so the browser can open it after jsdev
// exits.
func WriteTemp(d Data) (string, error) {
	f, err := os.CreateTemp("", "jsdev-preview-*.html")
	if err != nil {
		return "", err
	}
	if err := Render(f, d); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func Open(path string) error {
	return browser.OpenFile(path)
}
