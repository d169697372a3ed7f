package scpdoc

import "strings"

// IconBaseURL is the official SCP Wiki base for Anomaly Classification
// System badge icons.
const IconBaseURL = "https://scp-wiki.wdfiles.com/local--files/component:anomaly-class-bar"

// iconFiles maps lower-cased classification keywords to icon filenames.
// Read-only after init.
var iconFiles = map[string]string{
	// Containment
	"safe":        "safe-icon.svg",
	"euclid":      "euclid-icon.svg",
	"keter":       "keter-icon.svg",
	"neutralized": "neutralized-icon.svg",
	"pending":     "pending-icon.svg",
	"explained":   "explained-icon.svg",
	"esoteric":    "esoteric-icon.svg",

	// Secondary / Esoteric
	"thaumiel":       "thaumiel-icon.svg",
	"apollyon":       "apollyon-icon.svg",
	"archon":         "archon-icon.svg",
	"cernunnos":      "cernunnos-icon.svg",
	"decommissioned": "decommissioned-icon.svg",
	"hiemal":         "hiemal-icon.svg",
	"tiamat":         "tiamat-icon.svg",
	"ticonderoga":    "ticonderoga-icon.svg",
	"uncontained":    "uncontained-icon.svg",

	// Disruption
	"dark":  "dark-icon.svg",
	"vlam":  "vlam-icon.svg",
	"keneq": "keneq-icon.svg",
	"ekhi":  "ekhi-icon.svg",
	"amida": "amida-icon.svg",

	// Risk
	"none":     "notice-icon.svg",
	"notice":   "notice-icon.svg",
	"caution":  "caution-icon.svg",
	"warning":  "warning-icon.svg",
	"danger":   "danger-icon.svg",
	"critical": "critical-icon.svg",
}

// IconURL resolves a classification keyword to its badge icon URL.
// Lookup is case-insensitive. Unknown keywords return "".
func IconURL(value string) string {
	filename, ok := iconFiles[strings.ToLower(value)]
	if !ok {
		return ""
	}
	return IconBaseURL + "/" + filename
}
