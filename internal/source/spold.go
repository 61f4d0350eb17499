//spellchecker:words source
package source

//spellchecker:words encoding errors strings github ieograph internal crid google uuid
import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/FAU-CDI/ieograph/internal/crid"
	"github.com/google/uuid"
)

// cspell:words spold subcompartment subcompartments

// MasterData holds the records of an EcoSpold2 master data file.
type MasterData struct {
	Namespace string // namespace of the root element

	MajorRelease string
	MinorRelease string

	Activities            []crid.Activity
	IntermediateExchanges []crid.IntermediateExchange
	ElementaryExchanges   []crid.ElementaryExchange
}

// Tags lists the record tags present in this file.
func (md *MasterData) Tags() []string {
	var tags []string
	if len(md.Activities) > 0 {
		tags = append(tags, TagActivityName)
	}
	if len(md.IntermediateExchanges) > 0 {
		tags = append(tags, TagIntermediateExchange)
	}
	if len(md.ElementaryExchanges) > 0 {
		tags = append(tags, TagElementaryExchange)
	}
	return tags
}

// Record tags read from master data files
const (
	TagActivityName         = "activityName"
	TagIntermediateExchange = "intermediateExchange"
	TagElementaryExchange   = "elementaryExchange"
)

type xmlText struct {
	Lang string `xml:"http://www.w3.org/XML/1998/namespace lang,attr"`
	Text string `xml:",chardata"`
}

type xmlActivity struct {
	ID    string    `xml:"id,attr"`
	Names []xmlText `xml:"name"`
}

type xmlExchange struct {
	ID         string        `xml:"id,attr"`
	Names      []xmlText     `xml:"name"`
	UnitName   *xmlText      `xml:"unitName"`
	Properties []xmlProperty `xml:"property"`

	Compartment *struct {
		Compartments    []xmlText `xml:"compartment"`
		Subcompartments []xmlText `xml:"subcompartment"`
	} `xml:"compartment"`
}

type xmlProperty struct {
	ID string `xml:"propertyId,attr"`
}

var (
	errNoNamespace = errors.New("root element has no namespace")
	errNoRoot      = errors.New("no root element")
	errNotUUID     = errors.New("not a uuid")
)

// ReadMasterData reads an EcoSpold2 master data file from r.
// file is used only within error messages.
//
// Children of the root element other than activity names, intermediate and elementary exchanges are skipped.
func ReadMasterData(r io.Reader, file string) (*MasterData, error) {
	decoder := xml.NewDecoder(r)

	formatError := func(record, field string, err error) error {
		return &FormatError{File: file, Record: record, Field: field, Err: err}
	}

	var (
		md    MasterData
		root  bool
		count int
	)
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, formatError("", "", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		if !root {
			root = true
			if err := md.readRoot(start); err != nil {
				err.File = file
				return nil, err
			}
			continue
		}

		count++
		record := fmt.Sprintf("%s %d", start.Name.Local, count)

		switch start.Name.Local {
		case TagActivityName:
			var element xmlActivity
			if err := decoder.DecodeElement(&element, &start); err != nil {
				return nil, formatError(record, "", err)
			}
			if err := checkID(element.ID); err != nil {
				return nil, formatError(record, "id", err)
			}
			md.Activities = append(md.Activities, crid.Activity{
				ID:    element.ID,
				Names: names(element.Names),
			})
		case TagIntermediateExchange, TagElementaryExchange:
			var element xmlExchange
			if err := decoder.DecodeElement(&element, &start); err != nil {
				return nil, formatError(record, "", err)
			}
			if err := checkID(element.ID); err != nil {
				return nil, formatError(record, "id", err)
			}
			exchange := element.exchange()

			if start.Name.Local == TagIntermediateExchange {
				md.IntermediateExchanges = append(md.IntermediateExchanges, crid.IntermediateExchange{Exchange: exchange})
				continue
			}

			elementary := crid.ElementaryExchange{Exchange: exchange}
			if element.Compartment != nil {
				elementary.Compartments = byLanguage(element.Compartment.Compartments)
				elementary.Subcompartments = byLanguage(element.Compartment.Subcompartments)
			}
			md.ElementaryExchanges = append(md.ElementaryExchanges, elementary)
		default:
			count--
			if err := decoder.Skip(); err != nil {
				return nil, formatError(start.Name.Local, "", err)
			}
		}
	}

	if !root {
		return nil, formatError("", "", errNoRoot)
	}
	return &md, nil
}

func (md *MasterData) readRoot(start xml.StartElement) *FormatError {
	record := start.Name.Local

	md.Namespace = start.Name.Space
	if md.Namespace == "" {
		return &FormatError{Record: record, Field: "xmlns", Err: errNoNamespace}
	}

	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "majorRelease":
			md.MajorRelease = strings.TrimSpace(attr.Value)
		case "minorRelease":
			md.MinorRelease = strings.TrimSpace(attr.Value)
		}
	}

	switch {
	case md.MajorRelease == "":
		return &FormatError{Record: record, Field: "majorRelease", Err: errMissing}
	case md.MinorRelease == "":
		return &FormatError{Record: record, Field: "minorRelease", Err: errMissing}
	}
	return nil
}

func checkID(id string) error {
	if id == "" {
		return errMissing
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %w", errNotUUID, err)
	}
	return nil
}

func (element xmlExchange) exchange() crid.Exchange {
	exchange := crid.Exchange{
		ID:          element.ID,
		Names:       names(element.Names),
		HasProperty: len(element.Properties) > 0,
	}
	if element.UnitName != nil {
		exchange.UnitName = strings.TrimSpace(element.UnitName.Text)
		exchange.HasUnit = exchange.UnitName != ""
	}
	return exchange
}

func names(texts []xmlText) []crid.Name {
	names := make([]crid.Name, len(texts))
	for i, text := range texts {
		names[i] = crid.Name{
			Language: text.Lang,
			Text:     strings.TrimSpace(text.Text),
		}
	}
	return names
}

// byLanguage maps each language to the first text in it.
func byLanguage(texts []xmlText) map[string]string {
	result := make(map[string]string, len(texts))
	for _, text := range texts {
		if _, ok := result[text.Lang]; ok {
			continue
		}
		result[text.Lang] = strings.TrimSpace(text.Text)
	}
	return result
}
