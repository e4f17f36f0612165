package httpx

import (
	"encoding/xml"
	"fmt"

	"github.com/nameid/nameid/internal/domain/page"
)

// XRDS discovery document rendering. Relying parties fetch these documents to
// locate the provider endpoint; every other page only advertises them via the
// X-XRDS-Location header.

// ContentTypeXRDS is the media type for discovery documents.
const ContentTypeXRDS = "application/xrds+xml"

const (
	typeServerV20 = "http://specs.openid.net/auth/2.0/server"
	typeSignonV20 = "http://specs.openid.net/auth/2.0/signon"
	typeSignonV11 = "http://openid.net/signon/1.1"
)

type xrdsDoc struct {
	XMLName xml.Name `xml:"xrds:XRDS"`
	XMLNS   string   `xml:"xmlns,attr"`
	XRDSNS  string   `xml:"xmlns:xrds,attr"`
	XRD     xrdsXRD  `xml:"XRD"`
}

type xrdsXRD struct {
	Services []xrdsService `xml:"Service"`
}

type xrdsService struct {
	Priority int      `xml:"priority,attr"`
	Types    []string `xml:"Type"`
	URI      string   `xml:"URI"`
}

// RenderXRDS produces the discovery document of the given kind for the
// provider endpoint. The advertised URI carries view=openid so checkid
// requests sent to it reach the protocol view of the dispatcher.
func RenderXRDS(kind page.XRDSKind, endpoint string) ([]byte, error) {
	var types []string
	switch kind {
	case page.XRDSIdentity:
		types = []string{typeSignonV20, typeSignonV11}
	default:
		types = []string{typeServerV20}
	}

	doc := xrdsDoc{
		XMLNS:  "xri://$xrd*($v*2.0)",
		XRDSNS: "xri://$xrds",
		XRD: xrdsXRD{
			Services: []xrdsService{{Priority: 0, Types: types, URI: endpoint + "?view=openid"}},
		},
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal discovery document: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
