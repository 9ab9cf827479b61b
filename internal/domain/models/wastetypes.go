// internal/domain/models/wastetypes.go
package models

// Waste type labels offered by the report form.
//
// Report.Type and Organization.Type are free text; these are the values
// the client suggests, not an enforced enum.
const (
	WasteTypeStraw        = "稻草"
	WasteTypeMushroomBags = "菇包"
	WasteTypeTeaResidue   = "茶渣"
)

// WasteTypes lists the suggested waste types in display order.
var WasteTypes = []string{
	WasteTypeStraw,
	WasteTypeMushroomBags,
	WasteTypeTeaResidue,
}
