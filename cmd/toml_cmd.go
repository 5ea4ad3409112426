package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dzjyyds666/gotoml/pkg"
	"github.com/dzjyyds666/gotoml/toml"
	"github.com/spf13/cobra"
)

// TomlParams holds the toml subcommand's flags.
type TomlParams struct {
	Find   string `json:"find"`   // 查找的key
	Input  string `json:"input"`  // 输入文件路径
	Output string `json:"output"` // 输出文件地址
	JSON   bool   `json:"json"`   // 以 JSON 格式输出
	Typed  bool   `json:"typed"`  // 以类型化 JSON 格式输出 (toml-test 风格)
}

var params *TomlParams

var tomlCmd = &cobra.Command{
	Use:   "toml",
	Short: "toml parse tools",
	Run:   tomlRun,
}

func init() {
	params = &TomlParams{}
	tomlCmd.Flags().StringVarP(&params.Find, "find", "f", "", "dotted key path to look up, e.g. a.b.c")
	tomlCmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	tomlCmd.Flags().StringVarP(&params.Output, "output", "o", "", "output path (stdout if empty)")
	tomlCmd.Flags().BoolVarP(&params.JSON, "json", "j", false, "render output as plain JSON instead of TOML")
	tomlCmd.Flags().BoolVarP(&params.Typed, "typed", "t", false, "render output as toml-test style typed JSON")
}

func tomlRun(cmd *cobra.Command, args []string) {
	if len(params.Input) == 0 {
		fmt.Println("no input file path")
		return
	}
	exist, err := pkg.CheckFileExist(params.Input)
	if err != nil {
		fmt.Println("check file exist error:", err)
		return
	}
	if !exist {
		fmt.Println("input file not exist")
		return
	}

	doc, err := toml.ParseFile(params.Input)
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}

	root := doc.Root()
	if params.Find != "" {
		path := strings.Split(params.Find, ".")
		node, ok := root.GetPath(path...)
		if !ok {
			fmt.Println("key not found:", params.Find)
			return
		}
		if out, err := renderNode(node, params.Typed, params.JSON); err != nil {
			fmt.Println("render error:", err)
		} else {
			writeOutput(out)
		}
		return
	}

	var out []byte
	switch {
	case params.Typed:
		out, err = doc.ToJSONTyped()
	case params.JSON:
		out, err = doc.ToJSON()
	default:
		out, err = doc.ToTOML()
	}
	if err != nil {
		fmt.Println("render error:", err)
		return
	}
	writeOutput(out)
}

// renderNode renders a single looked-up Node the same way Document
// renders its root, since toml.Node has no public re-serialization
// method of its own outside a Document.
func renderNode(node toml.Node, typed, asJSON bool) ([]byte, error) {
	wrapper := toml.NewTable(toml.TableRoot, toml.OriginExplicit)
	if t, ok := node.(*toml.Table); ok {
		for _, k := range t.Keys() {
			child, _ := t.Get(k)
			wrapper.AddKeyValue([]string{k}, child)
		}
	} else {
		wrapper.AddKeyValue([]string{"value"}, node)
	}

	rendered := toml.NewDocumentFromTable(wrapper)
	switch {
	case typed:
		return rendered.ToJSONTyped()
	case asJSON:
		return rendered.ToJSON()
	default:
		return rendered.ToTOML()
	}
}

func writeOutput(data []byte) {
	if params.Output == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(params.Output, data, 0o644); err != nil {
		fmt.Println("write output error:", err)
	}
}
