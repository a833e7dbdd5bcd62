package blob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("p1", "i1", "photo.png")
	assert.Equal(t, "projects/p1/images/i1.png", key)
}

func TestObjectKeyWithoutExtension(t *testing.T) {
	key := ObjectKey("p1", "i1", "photo")
	assert.Equal(t, "projects/p1/images/i1", key)
}

func TestObjectKeyIgnoresClientPath(t *testing.T) {
	// Only the extension of the uploaded filename survives into the key.
	key := ObjectKey("p1", "i1", "../../etc/passwd.jpg")
	assert.Equal(t, "projects/p1/images/i1.jpg", key)
}
