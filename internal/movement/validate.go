package movement

// ValidationErrors maps a field name to a human-readable message. The item
// rule uses the dedicated "items" key.
type ValidationErrors map[string]string

const itemsErrorKey = "items"

// Rule is one validation rule: a field name plus a predicate over the
// document. A nil Check means the field is simply required to be non-empty.
type Rule struct {
	Field   string
	Message string
	Check   func(d *Document) bool
}

func required(field, message string) Rule {
	return Rule{Field: field, Message: message}
}

// Required header fields per document type. Messages match the ones the
// field office staff already know from the old forms.
var rulesByType = map[Type][]Rule{
	TypeTransfer: {
		required("transfer_date", "Transfer date is required"),
		required("ordered_by", "Ordered by is required"),
		required("verified_by", "Verified by is required"),
		required("source_warehouse", "Source warehouse is required"),
		required("destination_warehouse", "Destination warehouse is required"),
		required("delivered_by", "Delivery company is required"),
		required("operator", "Operator is required"),
		required("well", "Well is required"),
	},
	TypeReceiver: {
		required("receipt_date", "Receipt date is required"),
		required("vendor", "Vendor is required"),
		required("verified_by", "Verified by is required"),
		required("destination_warehouse", "Destination warehouse is required"),
		required("delivered_by", "Delivery company is required"),
	},
	TypeMudMix: {
		required("order_date", "Order date is required"),
		required("ordered_by", "Ordered by is required"),
		required("verified_by", "Verified by is required"),
		required("mixed_by", "Mixed by is required"),
		required("bbls_mixed", "Barrels mixed is required"),
		required("fluid_type", "Fluid type is required"),
		required("mud_weight", "Mud weight is required"),
		required("viscosity", "Viscosity is required"),
		required("temp", "Temperature is required"),
		required("operator", "Operator is required"),
		required("well_name", "Well name is required"),
		required("delivered_to", "Delivered to is required"),
		required("delivered_by", "Delivered by is required"),
	},
	// The invoice form has no validated header fields and no item table.
	TypeInvoice: {},
}

// RequiredFields lists the required header field names for a document type.
func RequiredFields(t Type) []string {
	rules := rulesByType[t]
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.Field)
	}
	return out
}

func requiresItems(t Type) bool {
	return t != TypeInvoice
}

// Validate recomputes the whole error map: every header rule, then the item
// rule (at least one row with a product and a quantity). The document is
// valid exactly when the map comes back empty.
func (d *Document) Validate() (bool, ValidationErrors) {
	errs := ValidationErrors{}
	for _, r := range rulesByType[d.Type] {
		ok := false
		if r.Check != nil {
			ok = r.Check(d)
		} else {
			ok = d.Header[r.Field] != ""
		}
		if !ok {
			errs[r.Field] = r.Message
		}
	}

	if requiresItems(d.Type) && d.Items.ValidCount() == 0 {
		errs[itemsErrorKey] = "At least one item with product and quantity is required"
	}

	d.Errors = errs
	return len(errs) == 0, errs
}
