package xmp

// Namespaces declared by every sidecar.
const (
	NamespaceMeta      = "adobe:ns:meta/"
	NamespaceRDF       = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceXMP       = "http://ns.adobe.com/xap/1.0/"
	NamespaceXMPMM     = "http://ns.adobe.com/xap/1.0/mm/"
	NamespaceDarktable = "http://darktable.sf.net/"
	NamespaceDC        = "http://purl.org/dc/elements/1.1/"
	NamespaceLightroom = "http://ns.adobe.com/lightroom/1.0/"

	// Toolkit identifies the writer the way exiv2-produced darktable files do.
	Toolkit = "XMP Core 4.4.0-Exiv2"
)

// darktableSequences are the empty history and mask lists darktable expects
// in a fresh sidecar.
var darktableSequences = []string{
	"darktable:mask_id",
	"darktable:mask_type",
	"darktable:mask_name",
	"darktable:mask_version",
	"darktable:mask",
	"darktable:mask_nb",
	"darktable:mask_src",
	"darktable:history_modversion",
	"darktable:history_enabled",
	"darktable:history_operation",
	"darktable:history_params",
	"darktable:blendop_params",
	"darktable:blendop_version",
	"darktable:multi_priority",
	"darktable:multi_name",
}

// Envelope builds x:xmpmeta/rdf:RDF/rdf:Description with the fixed darktable
// attributes and empty sequences. Every call returns a fresh tree.
func Envelope() *Element {
	desc := NewElement("rdf:Description",
		Attr{"rdf:about", ""},
		Attr{"xmlns:xmp", NamespaceXMP},
		Attr{"xmlns:xmpMM", NamespaceXMPMM},
		Attr{"xmlns:darktable", NamespaceDarktable},
		Attr{"xmlns:dc", NamespaceDC},
		Attr{"xmlns:lr", NamespaceLightroom},
		Attr{"darktable:xmp_version", "1"},
		Attr{"darktable:raw_params", "0"},
		Attr{"darktable:auto_presets_applied", "1"},
	)
	for _, name := range darktableSequences {
		desc.Add(NewElement(name).Add(NewElement("rdf:Seq")))
	}

	rdf := NewElement("rdf:RDF", Attr{"xmlns:rdf", NamespaceRDF}).Add(desc)

	return NewElement("x:xmpmeta",
		Attr{"xmlns:x", NamespaceMeta},
		Attr{"x:xmptk", Toolkit},
	).Add(rdf)
}
