package notification

import (
	"io"
	"strings"

	"expatmart/internal/domain/service"

	"github.com/valyala/fasttemplate"
)

type templateRenderer struct{}

// NewTemplateRenderer creates a renderer for {{name}} and {{ name }} placeholders.
// Unknown placeholders are left verbatim.
func NewTemplateRenderer() service.TemplateRenderer {
	return templateRenderer{}
}

func (templateRenderer) Render(template string, vars map[string]string) string {
	head, tail := splitUnterminated(template)

	rendered, err := fasttemplate.ExecuteFuncStringWithErr(head, "{{", "}}", func(w io.Writer, tag string) (int, error) {
		if v, ok := vars[strings.TrimSpace(tag)]; ok {
			return w.Write([]byte(v))
		}

		return w.Write([]byte("{{" + tag + "}}"))
	})
	if err != nil {
		return template
	}

	return rendered + tail
}

// splitUnterminated cuts the template at an opening "{{" that is never
// closed. The tail is kept verbatim.
func splitUnterminated(template string) (string, string) {
	from := 0
	if last := strings.LastIndex(template, "}}"); last >= 0 {
		from = last + len("}}")
	}

	open := strings.Index(template[from:], "{{")
	if open < 0 {
		return template, ""
	}

	return template[:from+open], template[from+open:]
}
