package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dalemusser/wastematch/internal/domain/models"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeOrg(w io.Writer, o models.Organization) {
	fmt.Fprintf(w, "%s（%s）\n", o.Name, o.Type)
	if o.Address != "" {
		fmt.Fprintf(w, "  地址：%s\n", o.Address)
	}
	if o.Phone != "" {
		fmt.Fprintf(w, "  電話：%s\n", o.Phone)
	}
}
