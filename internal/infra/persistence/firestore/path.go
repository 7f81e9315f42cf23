package firestore

import (
	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// Path addresses a location in the hierarchical store as an ordered sequence
// of segment strings, alternating collection and document IDs starting at a
// root collection. An even number of segments names an exact document; an odd
// number names a collection, where the engine assigns the document ID.
type Path []string

// Errors returned by path resolution.
var (
	ErrEmptyPath        = errors.New("path must have at least one segment")
	ErrEmptySegment     = errors.New("path segments must be non-empty")
	ErrWantDocumentPath = errors.New("path must have an even number of segments to address a document")
	ErrWantCollectionPath = errors.New("path must have an odd number of segments to address a collection")
)

func (p Path) validate() error {
	if len(p) == 0 {
		return ErrEmptyPath
	}
	for _, segment := range p {
		if segment == "" {
			return ErrEmptySegment
		}
	}

	return nil
}

// Doc resolves an even-length path to a document reference.
func (p Path) Doc(client *firestore.Client) (*firestore.DocumentRef, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if len(p)%2 != 0 {
		return nil, ErrWantDocumentPath
	}

	col := client.Collection(p[0])
	doc := col.Doc(p[1])
	for i := 2; i < len(p); i += 2 {
		doc = doc.Collection(p[i]).Doc(p[i+1])
	}

	return doc, nil
}

// Col resolves an odd-length path to a collection reference. Documents created
// under it get engine-assigned IDs.
func (p Path) Col(client *firestore.Client) (*firestore.CollectionRef, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if len(p)%2 != 1 {
		return nil, ErrWantCollectionPath
	}

	col := client.Collection(p[0])
	for i := 1; i < len(p); i += 2 {
		col = col.Doc(p[i]).Collection(p[i+1])
	}

	return col, nil
}
