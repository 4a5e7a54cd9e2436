package runner

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Print writes res to w in the given format.
func Print(w io.Writer, res *Result, format Format) error {
	switch format {
	case TextFormat:
		_, err := io.WriteString(w, TextReport(res))
		return err
	case YAMLFormat:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case JSONFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return fmt.Errorf("cannot print format %v", format)
}

func TextReport(res *Result) string {
	return fmt.Sprintf("Number of times %s appears: %d\n", res.Word, res.WordCount) +
		fmt.Sprintf("Number of times X-%s appears: %d\n", res.CrossWord, res.CrossCount) +
		fmt.Sprintf("Elapsed time: %dms\n", res.Elapsed.Milliseconds())
}
