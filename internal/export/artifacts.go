package export

import (
	"fmt"

	"github.com/okempf/boardbatch/internal/entity"
)

// Artifact file names, also used as download endpoints.
const (
	ArtifactOrdersXLSX   = "orders.xlsx"
	ArtifactDesignZip    = "design_csvs.zip"
	ArtifactGiftCSV      = "gift_messages.csv"
	ArtifactLabelsPDF    = "manufacturing_labels.pdf"
	ArtifactGiftPDF      = "gift_labels.pdf"
	designCSVNamePattern = "design_%d.csv"
)

// DesignCSVName returns the per-design CSV filename.
func DesignCSVName(design int) string {
	return fmt.Sprintf(designCSVNamePattern, design)
}

// BuildArtifacts renders every downloadable artifact for a batch. Artifacts
// that would be empty (no gifts, no designs) are left out of the map.
func BuildArtifacts(orders, expanded []entity.OrderRecord) (map[string][]byte, error) {
	out := make(map[string][]byte)

	xlsx, err := OrdersXLSX(orders)
	if err != nil {
		return nil, fmt.Errorf("orders workbook: %w", err)
	}
	out[ArtifactOrdersXLSX] = xlsx

	csvs, err := DesignCSVs(expanded)
	if err != nil {
		return nil, fmt.Errorf("design csvs: %w", err)
	}
	if len(csvs) > 0 {
		zipBytes, err := DesignCSVZip(csvs)
		if err != nil {
			return nil, fmt.Errorf("design zip: %w", err)
		}
		out[ArtifactDesignZip] = zipBytes
		for design, b := range csvs {
			out[DesignCSVName(design)] = b
		}
	}

	gifts, err := GiftMessagesCSV(expanded)
	if err != nil {
		return nil, fmt.Errorf("gift csv: %w", err)
	}
	if gifts != nil {
		out[ArtifactGiftCSV] = gifts
	}

	labels, err := ManufacturingLabelsPDF(expanded)
	if err != nil {
		return nil, fmt.Errorf("labels pdf: %w", err)
	}
	if labels != nil {
		out[ArtifactLabelsPDF] = labels
	}

	giftLabels, err := GiftMessageLabelsPDF(expanded)
	if err != nil {
		return nil, fmt.Errorf("gift labels pdf: %w", err)
	}
	if giftLabels != nil {
		out[ArtifactGiftPDF] = giftLabels
	}

	return out, nil
}
