package shell

import (
	"embed"
	"io"
	"path"
)

//go:embed helptext/*.txt
var helptext embed.FS

func usage(w io.Writer) {
	dat, err := helptext.ReadFile("helptext/usage.txt")
	if err != nil {
		io.WriteString(w, "Error loading helptext: "+err.Error())
		return
	}
	io.WriteString(w, string(dat))
}

func usageTopic(w io.Writer, topic string) {
	dat, err := helptext.ReadFile(path.Join("helptext", path.Base(topic)+".txt"))
	if err != nil {
		io.WriteString(w, "There is no help text for the topic "+topic+"\n")
		return
	}
	io.WriteString(w, string(dat))
}
