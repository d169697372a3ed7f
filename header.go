package scpdoc

import (
	"fmt"
	"strings"
)

// fallbackItemNumber is displayed when neither an item number nor a title
// is present in the record.
const fallbackItemNumber = "SCP-XXXX"

// renderClassicHeader emits the classic Item #/Object Class header.
// The item number falls back to the document title, then to a fixed
// placeholder; the title falls back to the item number.
func renderClassicHeader(doc Record) string {
	classic := doc.sub("classic")
	itemNumber := classic.str("item_number", doc.str("title", fallbackItemNumber))
	objectClass := classic.str("object_class", "Euclid")
	title := doc.str("title", itemNumber)

	var b strings.Builder
	b.WriteString("<section class=\"doc-header\">\n")
	fmt.Fprintf(&b, "  <div class=\"doc-title\">%s</div>\n", esc(title))
	writeSubtitle(&b, doc)
	b.WriteString("  <div class=\"meta-lines\">\n")
	fmt.Fprintf(&b, "    <div><span class=\"meta-key\">Item #:</span> %s</div>\n", esc(itemNumber))
	fmt.Fprintf(&b, "    <div><span class=\"meta-key\">Object Class:</span> %s</div>\n", esc(objectClass))
	b.WriteString("  </div>\n")
	b.WriteString("</section>")
	return b.String()
}

// renderACSHeader emits the Anomaly Classification System header: the
// title block, a classification bar, and one badge per classification axis
// in fixed order.
func renderACSHeader(doc Record) string {
	acs := doc.sub("acs")
	title := doc.str("title", fallbackItemNumber)

	itemNumber := acs.str("item_number", title)
	clearance := "Level " + acs.str("clearance_level", "2")
	if label := acs.strOpt("clearance_label"); label != "" {
		clearance += ": " + label
	}

	var b strings.Builder
	b.WriteString("<section class=\"doc-header\">\n")
	fmt.Fprintf(&b, "  <div class=\"doc-title\">%s</div>\n", esc(title))
	writeSubtitle(&b, doc)
	b.WriteString("  <div class=\"acs-bar\">\n")
	b.WriteString("    <div class=\"acs-top\">\n")
	fmt.Fprintf(&b, "      <div class=\"acs-item\"><span class=\"acs-k\">Item #</span>%s</div>\n", esc(itemNumber))
	fmt.Fprintf(&b, "      <div class=\"acs-item\"><span class=\"acs-k\">Clearance</span>%s</div>\n", esc(clearance))
	// The memo link stays inside an HTML comment. It is an authoring
	// affordance scraped by downstream tooling, never reader-visible.
	fmt.Fprintf(&b, "      <!-- %s -->\n", memoLink(acs.strOpt("memo_url")))
	b.WriteString("    </div>\n")
	b.WriteString("    <div class=\"acs-badges\">\n")
	writeBadge(&b, "Containment", acs.str("containment_class", "euclid"))
	writeBadge(&b, "Secondary", acs.str("secondary_class", "none"))
	writeBadge(&b, "Disruption", acs.str("disruption_class", "none"))
	writeBadge(&b, "Risk", acs.str("risk_class", "notice"))
	b.WriteString("    </div>\n")
	b.WriteString("  </div>\n")
	b.WriteString("</section>")
	return b.String()
}

// writeSubtitle emits the subtitle block iff the record carries a
// non-empty subtitle.
func writeSubtitle(b *strings.Builder, doc Record) {
	if subtitle := doc.strOpt("subtitle"); subtitle != "" {
		fmt.Fprintf(b, "  <div class=\"doc-subtitle\">%s</div>\n", esc(subtitle))
	}
}

// memoLink builds the comment-only memo anchor, or "" when no memo URL is
// present.
func memoLink(url string) string {
	if url == "" {
		return ""
	}
	return fmt.Sprintf("<a class='memo-link' href='%s'>Link to memo</a>", esc(url))
}

// writeBadge appends one classification badge. Values with no icon in the
// classification table produce nothing at all.
func writeBadge(b *strings.Builder, label, value string) {
	icon := IconURL(value)
	if icon == "" {
		return
	}
	b.WriteString("      <div class=\"badge badge--acs\">\n")
	fmt.Fprintf(b, "        <img src=\"%s\" alt=\"%s: %s\" class=\"badge__icon\" loading=\"lazy\" referrerpolicy=\"no-referrer\">\n",
		icon, esc(label), esc(value))
	b.WriteString("        <div class=\"badge__text\">\n")
	fmt.Fprintf(b, "          <div class=\"badge__label\">%s</div>\n", esc(label))
	fmt.Fprintf(b, "          <div class=\"badge__value\">%s</div>\n", esc(value))
	b.WriteString("        </div>\n")
	b.WriteString("      </div>\n")
}
