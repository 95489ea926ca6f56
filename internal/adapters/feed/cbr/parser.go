package cbr

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kmalkov/cbr_rates_app/internal/apperrors"
	"github.com/kmalkov/cbr_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// rootDateFormat is the dd.mm.yyyy layout of the ValCurs Date attribute.
const rootDateFormat = "02.01.2006"

type valCurs struct {
	XMLName xml.Name `xml:"ValCurs"`
	Date    string   `xml:"Date,attr"`
	Valutes []valute `xml:"Valute"`
}

type valute struct {
	ID        string `xml:"ID,attr"`
	NumCode   string `xml:"NumCode"`
	CharCode  string `xml:"CharCode"`
	Nominal   string `xml:"Nominal"`
	Name      string `xml:"Name"`
	Value     string `xml:"Value"`
	VunitRate string `xml:"VunitRate"`
}

// Parser turns decoded ValCurs XML into domain.Rate records. It is a pure
// function of its input and implements feed.Parser.
type Parser struct{}

// NewParser creates a feed parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes the feed text. Records come back in feed order. A missing
// root element, a currency entry without its ID attribute, an unparseable
// numeric field or a bad root date all fail with apperrors.ErrParse.
func (p *Parser) Parse(data string) ([]domain.Rate, error) {
	dec := xml.NewDecoder(strings.NewReader(data))
	// The XML prolog still declares windows-1251 even though the fetcher has
	// already decoded the body to UTF-8, so pass the input through as-is.
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var root valCurs
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: invalid feed document: %v", apperrors.ErrParse, err)
	}

	date, err := time.Parse(rootDateFormat, root.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid root date %q: %v", apperrors.ErrParse, root.Date, err)
	}

	rates := make([]domain.Rate, 0, len(root.Valutes))
	for _, v := range root.Valutes {
		if v.ID == "" {
			return nil, fmt.Errorf("%w: currency entry %q is missing its ID attribute", apperrors.ErrParse, v.Name)
		}

		nominal, err := strconv.Atoi(strings.TrimSpace(v.Nominal))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid nominal %q for %s: %v", apperrors.ErrParse, v.Nominal, v.ID, err)
		}

		value, err := parseFeedDecimal(v.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid value %q for %s: %v", apperrors.ErrParse, v.Value, v.ID, err)
		}

		vunitRate, err := parseFeedDecimal(v.VunitRate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid unit rate %q for %s: %v", apperrors.ErrParse, v.VunitRate, v.ID, err)
		}

		rates = append(rates, domain.Rate{
			ID:        v.ID,
			NumCode:   strings.TrimSpace(v.NumCode),
			CharCode:  strings.ToUpper(strings.TrimSpace(v.CharCode)),
			Nominal:   nominal,
			Name:      strings.TrimSpace(v.Name),
			Value:     value,
			VUnitRate: vunitRate,
			Date:      date,
		})
	}

	return rates, nil
}

// parseFeedDecimal accepts both decimal-separator conventions found in real
// feeds: comma-decimal ("75,5000") and dot-decimal ("75.5000").
func parseFeedDecimal(s string) (decimal.Decimal, error) {
	normalized := strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	return decimal.NewFromString(normalized)
}
