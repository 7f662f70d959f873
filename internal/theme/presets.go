package theme

func init() {
	// White on purple, yellow version, cyan author.
	Register(DefaultName, Theme{
		NameFG:  "#FFFFFF",
		NameBG:  "#AA00FF",
		Version: "#FFFF00",
		Author:  "#00FFFF",
	})

	Register("neon", Theme{
		NameFG:  "#000000",
		NameBG:  "#39FF14",
		Version: "#FF1493",
		Author:  "#00E5FF",
	})

	Register("pastel", Theme{
		NameFG:  "#3B3355",
		NameBG:  "#FFD1DC",
		Version: "#B5EAD7",
		Author:  "#C7CEEA",
	})

	Register("mono", Theme{
		NameFG:  "#000000",
		NameBG:  "#EEEEEE",
		Version: "#BCBCBC",
		Author:  "#8A8A8A",
	})
}
