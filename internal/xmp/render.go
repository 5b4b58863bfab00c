package xmp

import "strconv"

// Sidecar is the photo-specific content of one XMP file.
type Sidecar struct {
	Rating       int
	Description  string
	Flat         *SubjectSet
	Hierarchical *SubjectSet
}

// Render fills a fresh envelope with the sidecar content. The rating is
// always written; description and subject lists only when non-empty.
func Render(s Sidecar) *Element {
	root := Envelope()
	desc := root.Find("rdf:Description")

	desc.SetAttr("xmp:rating", strconv.Itoa(s.Rating))

	if s.Description != "" {
		li := NewElement("rdf:li", Attr{"xml:lang", "x-default"})
		li.Text = s.Description
		desc.Add(NewElement("dc:description").Add(NewElement("rdf:Alt").Add(li)))
	}
	if s.Flat.Len() > 0 {
		desc.Add(NewElement("dc:subject").Add(sequence(s.Flat)))
	}
	if s.Hierarchical.Len() > 0 {
		desc.Add(NewElement("lr:hierarchicalSubject").Add(sequence(s.Hierarchical)))
	}
	return root
}

func sequence(set *SubjectSet) *Element {
	seq := NewElement("rdf:Seq")
	for _, v := range set.Sorted() {
		li := NewElement("rdf:li")
		li.Text = v
		seq.Add(li)
	}
	return seq
}
