package helpers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// TestData is a test struct with header tags.
type TestData struct {
	Name  string `header:"Name" json:"name" yaml:"name"`
	Value int    `header:"Value" json:"value" yaml:"value"`
	Extra string `json:"-" yaml:"-"` // No header tag, should be ignored
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		name    string
		format  OutputFormat
		wantErr bool
	}{
		{name: "table formatter", format: FormatTable},
		{name: "json formatter", format: FormatJSON},
		{name: "yaml formatter", format: FormatYAML},
		{name: "unsupported format", format: OutputFormat("csv"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewFormatter(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewFormatter() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got == nil {
				t.Errorf("NewFormatter() returned nil formatter")
			}
		})
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	buf := &bytes.Buffer{}
	data := []TestData{{Name: "a<b>", Value: 1, Extra: "hidden"}}

	if err := (&JSONFormatter{}).Format(data, buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var result []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Format() produced invalid JSON: %v", err)
	}
	if !strings.Contains(buf.String(), "a<b>") {
		t.Errorf("expected unescaped output, got %s", buf.String())
	}
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("field tagged json:\"-\" leaked into output")
	}
}

func TestYAMLFormatter_Format(t *testing.T) {
	buf := &bytes.Buffer{}
	data := []TestData{{Name: "first", Value: 1}, {Name: "second", Value: 2}}

	if err := (&YAMLFormatter{}).Format(data, buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded []TestData
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Format() produced invalid YAML: %v", err)
	}
	if len(decoded) != 2 || decoded[1].Name != "second" {
		t.Errorf("unexpected round trip: %+v", decoded)
	}
}

func TestTableFormatter_Format(t *testing.T) {
	tests := []struct {
		name         string
		data         interface{}
		wantErr      bool
		wantContains []string
	}{
		{
			name: "slice of structs",
			data: []TestData{
				{Name: "test1", Value: 1, Extra: "ignored"},
				{Name: "test2", Value: 2, Extra: "ignored"},
			},
			wantContains: []string{"Name", "Value", "test1", "1", "test2", "2"},
		},
		{
			name:         "empty slice prints headers",
			data:         []TestData{},
			wantContains: []string{"Name", "Value"},
		},
		{
			name:         "slice of pointers",
			data:         []*TestData{{Name: "ptr", Value: 3}},
			wantContains: []string{"ptr", "3"},
		},
		{
			name:    "non-slice data",
			data:    TestData{Name: "single", Value: 42},
			wantErr: true,
		},
		{
			name:    "slice of strings",
			data:    []string{"a"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			err := (&TableFormatter{}).Format(tt.data, buf)
			if (err != nil) != tt.wantErr {
				t.Errorf("TableFormatter.Format() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			output := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("TableFormatter.Format() output missing %q\nGot: %s", want, output)
				}
			}
			if strings.Contains(output, "ignored") {
				t.Errorf("untagged field leaked into table output")
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	supported := []OutputFormat{FormatTable, FormatJSON}

	if err := ValidateFormat("json", supported); err != nil {
		t.Errorf("ValidateFormat(json) = %v", err)
	}
	err := ValidateFormat("yaml", supported)
	if err == nil || !strings.Contains(err.Error(), "table, json") {
		t.Errorf("ValidateFormat(yaml) = %v, want error listing supported formats", err)
	}
}

func TestAddFormatFlag(t *testing.T) {
	var format string
	cmd := &cobra.Command{Use: "x"}
	AddFormatFlag(cmd, &format, FormatTable, []OutputFormat{FormatTable, FormatYAML})

	if err := cmd.Flags().Parse([]string{"-o", "yaml"}); err != nil {
		t.Fatal(err)
	}
	if format != "yaml" {
		t.Errorf("format = %q, want yaml", format)
	}
	if usage := cmd.Flags().Lookup("format").Usage; !strings.Contains(usage, "table, yaml") {
		t.Errorf("unexpected usage %q", usage)
	}
}

func TestRemapFlags_AddFlags(t *testing.T) {
	var f RemapFlags
	cmd := &cobra.Command{Use: "x"}
	f.AddFlags(cmd.Flags())

	err := cmd.Flags().Parse([]string{"--workspace-remap", "/ws", "--target-dir-remap", "/td"})
	if err != nil {
		t.Fatal(err)
	}
	if f.WorkspaceRemap != "/ws" || f.TargetDirRemap != "/td" {
		t.Errorf("unexpected flags %+v", f)
	}
}
