package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/okempf/boardbatch/constants"
	"github.com/okempf/boardbatch/internal/dates"
	"github.com/okempf/boardbatch/internal/entity"
	"github.com/okempf/boardbatch/internal/textutil"
)

// fieldSpec is one labeled-field search: a pattern with a single capture
// group, a default for when the pattern is absent, and an optional
// post-processing step. Specs are evaluated independently so each field can
// be tested on its own.
type fieldSpec struct {
	name string
	re   *regexp.Regexp
	def  string
	post func(string) string
}

var orderInfoFields = []fieldSpec{
	{name: "order_id", re: regexp.MustCompile(`Order ID:\s*([\d-]+)`)},
	{name: "order_item_id", re: regexp.MustCompile(`Order Item ID:\s*([A-Z0-9]+)`)},
	{name: "order_date", re: regexp.MustCompile(`Order Date:\s*(.+)`), post: dates.Resolve},
	{name: "sku", re: regexp.MustCompile(`SKU:\s*([A-Z0-9\-]+)`)},
	{name: "asin", re: regexp.MustCompile(`ASIN:\s*([A-Z0-9]+)`)},
	{name: "quantity", re: regexp.MustCompile(`(?:Qty|Quantity):\s*(\d+)`), def: "1"},
}

var customizationFields = []fieldSpec{
	{name: "order_option", re: regexp.MustCompile(`(?i)Select Your Order:\s*(.+)`), post: NormalizeBoardType},
	{name: "customization_note", re: regexp.MustCompile(`(?i)Board Customization Note:\s*(.+)`)},
	// If the note is blank we keep the letter blank too; neither field is
	// ever inferred from the other.
	{name: "engraving_letter", re: regexp.MustCompile(`(?i)Engraving Letter for Cheese Knife Handles:\s*(.+)`)},
	{name: "spelling_confirmation", re: regexp.MustCompile(`(?i)Please CHECK for mistakes and spellings\.?:\s*(.+)`)},
}

var (
	// Only the first surface's customizations are honored; anything under
	// "Surface 2:" is discarded on purpose.
	reCustomizationSpan = regexp.MustCompile(`(?is)Customizations:(.*?)(?:Surface 2:|$)`)

	// Two design-number phrasings, first match wins.
	reDesignVariants = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Choose Your Design\s*#?:\s*Design\s*(\d+)`),
		regexp.MustCompile(`(?i)Design\s*#?\s*[:\-]?\s*(\d+)`),
	}

	reGiftBlock = regexp.MustCompile(`(?is)Gift Note\s*&\s*Gift Bag:\s*(.*?)(?:Please CHECK for mistakes and spellings\.?:|$)`)
	reGiftNo    = regexp.MustCompile(`(?i)^\s*no\b`)

	reCountry = regexp.MustCompile(`(?i)united states|usa|canada|mexico`)
)

// searchFields runs every spec against text and returns the found (or
// default) value per field.
func searchFields(text string, specs []fieldSpec) map[string]string {
	out := make(map[string]string, len(specs))
	for _, spec := range specs {
		val := spec.def
		if m := spec.re.FindStringSubmatch(text); m != nil {
			val = textutil.SafeString(m[1])
		}
		if spec.post != nil {
			val = spec.post(val)
		}
		out[spec.name] = val
	}
	return out
}

// ExtractOrder builds one OrderRecord from a segmented chunk. Extraction
// never fails: absent fields keep their defaults.
func ExtractOrder(segment string) entity.OrderRecord {
	rec := entity.OrderRecord{
		Quantity:    1,
		GiftOption:  constants.GiftOptionNo,
		LabelStatus: constants.MatchStatusMissing,
	}

	lines := strings.Split(segment, "\n")
	rec.ShipToName, rec.AddressLine1, rec.City, rec.State, rec.Zip, rec.Country = extractShippingBlock(lines)
	rec.BuyerName = textutil.FirstToken(rec.ShipToName)

	info := searchFields(segment, orderInfoFields)
	rec.OrderID = info["order_id"]
	rec.OrderItemID = info["order_item_id"]
	rec.OrderDate = info["order_date"]
	rec.SKU = info["sku"]
	rec.ASIN = info["asin"]
	if q, err := strconv.Atoi(info["quantity"]); err == nil && q >= 1 {
		rec.Quantity = q
	}
	rec.ProductTitle = extractProductTitle(lines)

	block := customizationSpan(segment)
	cust := searchFields(block, customizationFields)
	rec.OrderOption = cust["order_option"]
	rec.CustomizationNote = cust["customization_note"]
	rec.EngravingLetter = cust["engraving_letter"]
	rec.SpellingConfirm = cust["spelling_confirmation"]
	rec.DesignNumber = extractDesignNumber(block)
	rec.GiftOption, rec.GiftMessage = extractGift(block)

	return rec
}

// extractShippingBlock reads the windowed address block after the "Ship To"
// anchor: up to six following lines, blanks dropped. First line is the
// recipient, second the street address; the first remaining line with a
// postal code is parsed as city/state/zip; the last line counts as a country
// only when it names one.
func extractShippingBlock(lines []string) (name, addr1, city, state, zip, country string) {
	idx := -1
	for i, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "ship to:") || textutil.SafeString(lower) == "ship to" {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	var block []string
	for i := idx + 1; i < len(lines) && i <= idx+6; i++ {
		if t := textutil.SafeString(lines[i]); t != "" {
			block = append(block, t)
		}
	}
	if len(block) == 0 {
		return
	}

	name = block[0]
	if len(block) >= 2 {
		addr1 = block[1]
	}
	for _, l := range block[1:] {
		if HasZip(l) {
			city, state, zip = CityStateZip(l)
			break
		}
	}
	if last := block[len(block)-1]; reCountry.MatchString(last) {
		country = last
	}
	return
}

// extractProductTitle takes the first non-empty line after the ASIN label,
// scanning at most four lines down.
func extractProductTitle(lines []string) string {
	for i, line := range lines {
		if !strings.Contains(line, "ASIN:") {
			continue
		}
		for j := i + 1; j < len(lines) && j <= i+4; j++ {
			if t := textutil.SafeString(lines[j]); t != "" {
				return t
			}
		}
		break
	}
	return ""
}

func customizationSpan(segment string) string {
	if m := reCustomizationSpan.FindStringSubmatch(segment); m != nil {
		return m[1]
	}
	return segment
}

// extractDesignNumber tries the two pattern variants in order and parses the
// first hit as an integer. Absent or non-numeric means nil.
func extractDesignNumber(block string) *int {
	for _, re := range reDesignVariants {
		m := re.FindStringSubmatch(block)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}
		return &n
	}
	return nil
}

// extractGift applies the gift note rule: an answer starting with "no" means
// no gift and no message; anything else is a gift and the whole answer,
// whitespace-collapsed, is the message.
func extractGift(block string) (constants.GiftOption, string) {
	m := reGiftBlock.FindStringSubmatch(block)
	if m == nil {
		return constants.GiftOptionNo, ""
	}
	raw := textutil.SafeString(m[1])
	if reGiftNo.MatchString(raw) {
		return constants.GiftOptionNo, ""
	}
	return constants.GiftOptionYes, textutil.CollapseSpaces(raw)
}
