// Package pathcodec maps logical upload intents to physical storage paths and
// recovers storage paths from issued download URLs. It is pure string
// transformation: no store client is touched here.
package pathcodec

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode"
)

var (
	// ErrInvalidInput reports empty or unusable codec arguments. It signals a
	// caller bug, not a user-correctable condition.
	ErrInvalidInput = errors.New("pathcodec: invalid input")

	// ErrMalformedURL reports a download URL that does not carry the expected
	// path marker. Callers must not attempt a deletion when they see it.
	ErrMalformedURL = errors.New("pathcodec: malformed download url")
)

// pathMarker is the segment the blob store inserts immediately before the
// escaped storage path in every download URL it issues.
const pathMarker = "/o/"

// BuildUploadPath returns "{namespace}/{folderKey}/{uniqueFileName}" where the
// unique name is the upload instant in Unix milliseconds, an underscore, and
// the original file name with all whitespace removed. Two uploads of the same
// file name at different instants never collide; a same-millisecond collision
// is accepted.
//
// The codec does not normalize namespace or folderKey. Callers that want
// lower-cased or trimmed keys do that before calling.
func BuildUploadPath(namespace, folderKey, originalFileName string, now time.Time) (string, error) {
	if namespace == "" {
		return "", fmt.Errorf("%w: empty namespace", ErrInvalidInput)
	}
	if folderKey == "" {
		return "", fmt.Errorf("%w: empty folder key", ErrInvalidInput)
	}

	name := stripWhitespace(originalFileName)
	if name == "" {
		return "", fmt.Errorf("%w: empty file name", ErrInvalidInput)
	}

	return fmt.Sprintf("%s/%s/%d_%s", namespace, folderKey, now.UnixMilli(), name), nil
}

// ResolveStoragePathFromURL recovers the exact storage path a download URL was
// minted for: the query string is dropped, everything after the path marker is
// taken, and percent escapes are decoded. The store's escaping is treated as
// an opaque format to parse defensively, so anything without the marker is
// rejected rather than guessed at.
func ResolveStoragePathFromURL(rawURL string) (string, error) {
	trimmed := rawURL
	if i := strings.IndexByte(trimmed, '?'); i >= 0 {
		trimmed = trimmed[:i]
	}

	i := strings.Index(trimmed, pathMarker)
	if i < 0 {
		return "", fmt.Errorf("%w: no %q marker in %q", ErrMalformedURL, pathMarker, rawURL)
	}

	escaped := trimmed[i+len(pathMarker):]
	if escaped == "" {
		return "", fmt.Errorf("%w: empty path after marker in %q", ErrMalformedURL, rawURL)
	}

	path, err := url.PathUnescape(escaped)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrMalformedURL, err.Error())
	}

	return path, nil
}

// DownloadURL mints the URL shape ResolveStoragePathFromURL inverts:
// {base}/v0/b/{bucket}/o/{escaped-path}?alt=media&token={token}. The token is
// opaque to the codec and stripped again on resolution.
func DownloadURL(baseURL, bucket, storagePath, token string) string {
	return fmt.Sprintf("%s/v0/b/%s/o/%s?alt=media&token=%s",
		strings.TrimSuffix(baseURL, "/"), bucket, url.PathEscape(storagePath), token)
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}
