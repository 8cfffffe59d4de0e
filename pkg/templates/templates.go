// Package templates renders the file contents the scaffold builder writes:
// the README, the configured build file, and the node config and launch
// file stubs.
package templates

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"text/template"

	"github.com/beevik/etree"

	"github.com/sunswift/srpkg/pkg/config"
	srpkgerr "github.com/sunswift/srpkg/pkg/errors"
)

var (
	//go:embed readme.md.tmpl
	readmeRaw string
	//go:embed cmakelists.txt.tmpl
	cmakeRaw string

	readmeTmpl = template.Must(template.New("readme").Parse(readmeRaw))
	cmakeTmpl  = template.Must(template.New("cmakelists").Parse(cmakeRaw))
)

// templateData is the substitution context shared by the text templates.
type templateData struct {
	Name   string
	Suffix string
}

// Readme renders the package README. The package name appears exactly once,
// on the title line.
func Readme(name, suffix string) ([]byte, error) {
	var buf bytes.Buffer
	if err := readmeTmpl.Execute(&buf, templateData{Name: name, Suffix: suffix}); err != nil {
		return nil, srpkgerr.Wrap(err, srpkgerr.ErrTemplateRender, "failed to render README.md")
	}
	return buf.Bytes(), nil
}

// BuildFile returns the filename and content of the build file for the
// configured format. The Makefile variant is intentionally empty; the
// CMake variant carries a minimal project skeleton.
func BuildFile(format, name string) (string, []byte, error) {
	switch format {
	case config.BuildFileMakefile:
		return "Makefile", []byte{}, nil
	case config.BuildFileCMake:
		var buf bytes.Buffer
		if err := cmakeTmpl.Execute(&buf, templateData{Name: name}); err != nil {
			return "", nil, srpkgerr.Wrap(err, srpkgerr.ErrTemplateRender, "failed to render CMakeLists.txt")
		}
		return "CMakeLists.txt", buf.Bytes(), nil
	default:
		return "", nil, srpkgerr.Newf(srpkgerr.ErrTemplateRender, "unknown build file format %q", format)
	}
}

// nodeConfig is the stub written into config/<name>.json.
type nodeConfig struct {
	Node struct {
		Name   string            `json:"name"`
		Params map[string]string `json:"params"`
	} `json:"node"`
}

// NodeConfig renders the JSON node config stub.
func NodeConfig(name string) ([]byte, error) {
	var nc nodeConfig
	nc.Node.Name = name
	nc.Node.Params = map[string]string{}

	data, err := json.MarshalIndent(nc, "", "  ")
	if err != nil {
		return nil, srpkgerr.Wrapf(err, srpkgerr.ErrTemplateRender, "failed to render %s.json", name)
	}
	return append(data, '\n'), nil
}

// Launch renders the XML launch file stub pointing the node at its config.
func Launch(name string) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	launch := doc.CreateElement("launch")
	node := launch.CreateElement("node")
	node.CreateAttr("name", name)
	node.CreateAttr("config", "config/"+name+".json")

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, srpkgerr.Wrapf(err, srpkgerr.ErrTemplateRender, "failed to render %s.launch", name)
	}
	return data, nil
}
