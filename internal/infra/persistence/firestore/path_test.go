package firestore

import (
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_Doc(t *testing.T) {
	client := &firestore.Client{}

	doc, err := Path{"users", "user-1", "tokens", "token-a"}.Doc(client)

	require.NoError(t, err)
	assert.Equal(t, "token-a", doc.ID)
	assert.Equal(t, "tokens", doc.Parent.ID)
}

func TestPath_Doc_TopLevel(t *testing.T) {
	client := &firestore.Client{}

	doc, err := Path{"users", "user-1"}.Doc(client)

	require.NoError(t, err)
	assert.Equal(t, "user-1", doc.ID)
}

func TestPath_Doc_OddSegments(t *testing.T) {
	client := &firestore.Client{}

	doc, err := Path{"users", "user-1", "tokens"}.Doc(client)

	assert.ErrorIs(t, err, ErrWantDocumentPath)
	assert.Nil(t, doc)
}

func TestPath_Col(t *testing.T) {
	client := &firestore.Client{}

	col, err := Path{"users", "user-1", "notifications"}.Col(client)

	require.NoError(t, err)
	assert.Equal(t, "notifications", col.ID)
}

func TestPath_Col_EvenSegments(t *testing.T) {
	client := &firestore.Client{}

	col, err := Path{"users", "user-1"}.Col(client)

	assert.ErrorIs(t, err, ErrWantCollectionPath)
	assert.Nil(t, col)
}

func TestPath_Empty(t *testing.T) {
	client := &firestore.Client{}

	_, err := Path{}.Doc(client)
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = Path{}.Col(client)
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestPath_EmptySegment(t *testing.T) {
	client := &firestore.Client{}

	_, err := Path{"users", ""}.Doc(client)
	assert.ErrorIs(t, err, ErrEmptySegment)

	_, err = Path{"users", "", "notifications"}.Col(client)
	assert.ErrorIs(t, err, ErrEmptySegment)
}
