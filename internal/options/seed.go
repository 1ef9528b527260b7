package options

// DefaultMaster is the shipped option set. The products list is normally
// replaced at boot with the display names of the loaded catalog.
func DefaultMaster() map[Category][]string {
	return map[Category][]string{
		CategoryWarehouses: {
			"Bakersfield",
			"Odessa",
			"Williston",
			"Casper",
			"Midland",
			"CUSTOMER",
		},
		CategoryCarriers: {
			"Vendor Setup Trucking",
			"GEO Truck #7",
			"Basin Transport",
			"Red River Hauling",
			"Hot Shot Services",
		},
		CategoryProducts: {
			"Geo Bar - Bulk",
			"Geo Bar - Sack",
			"Geo Gel",
			"Caustic Soda",
			"Soda Ash",
			"Lime",
		},
		CategoryPersonnel: {
			"James Brown",
			"Chris Tisler",
			"Maria Gonzalez",
			"Dale Whitfield",
			"Tommy Nguyen",
		},
		CategoryOperators: {
			"XTO Energy",
			"Chevron",
			"Aera Energy",
			"California Resources",
			"Berry Petroleum",
			"Crimson Resource",
		},
		CategoryFluidTypes: {
			"Water-Based Mud",
			"Oil-Based Mud",
			"Brine",
			"Spud Mud",
			"Polymer Mud",
		},
	}
}
