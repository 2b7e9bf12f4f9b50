package ucf

import (
	"encoding/xml"
	"fmt"
)

// ContainerNamespace is the XML namespace used by META-INF/container.xml.
const ContainerNamespace = "urn:oasis:names:tc:opendocument:xmlns:container"

// containerName is the manifest's member name, relative to META-INF/.
const containerName = "container.xml"

// Rootfile is one entry in the container manifest: the package-relative path
// of a primary content document paired with its media type. An empty
// MediaType means the media-type attribute is absent from the manifest.
type Rootfile struct {
	FullPath  string
	MediaType string
}

// containerDoc is the marshalling shape for container.xml. The namespace is
// declared once on the root as the default namespace so child elements carry
// no prefix.
type containerDoc struct {
	XMLName   xml.Name      `xml:"container"`
	Xmlns     string        `xml:"xmlns,attr"`
	Version   string        `xml:"version,attr"`
	Rootfiles rootfilesElem `xml:"rootfiles"`
}

type rootfilesElem struct {
	Rootfile []rootfileElem `xml:"rootfile"`
}

type rootfileElem struct {
	FullPath  string `xml:"full-path,attr"`
	MediaType string `xml:"media-type,attr,omitempty"`
}

// containerParse is the unmarshalling shape. The root element must be
// container in the OpenDocument container namespace; descendants are matched
// by local name.
type containerParse struct {
	XMLName   xml.Name      `xml:"urn:oasis:names:tc:opendocument:xmlns:container container"`
	Rootfiles rootfilesElem `xml:"rootfiles"`
}

// buildContainer serializes rootfiles as a container.xml document: UTF-8
// with an XML declaration, <container version="1.0"> in the container
// namespace, and one <rootfile> per entry in order.
func buildContainer(rootfiles []Rootfile) ([]byte, error) {
	doc := containerDoc{
		Xmlns:   ContainerNamespace,
		Version: "1.0",
	}
	for _, rf := range rootfiles {
		doc.Rootfiles.Rootfile = append(doc.Rootfiles.Rootfile, rootfileElem{
			FullPath:  rf.FullPath,
			MediaType: rf.MediaType,
		})
	}
	b, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: build container.xml: %v", ErrFormat, err)
	}
	return append([]byte(xml.Header), b...), nil
}

// parseContainer extracts the rootfile list from a container.xml document,
// in document order. A media-type attribute absent in the source yields an
// empty MediaType. A well-formed document without a rootfiles structure
// yields an empty list; malformed XML is a format error.
func parseContainer(data []byte) ([]Rootfile, error) {
	var doc containerParse
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse container.xml: %v", ErrFormat, err)
	}
	var rootfiles []Rootfile
	for _, rf := range doc.Rootfiles.Rootfile {
		rootfiles = append(rootfiles, Rootfile{FullPath: rf.FullPath, MediaType: rf.MediaType})
	}
	return rootfiles, nil
}
