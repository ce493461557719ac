// media/types.go
package media

// AssetKind names one of the binary files stored for a picture.
type AssetKind string

const (
	AssetPicture   AssetKind = "PICTURE"
	AssetRaw       AssetKind = "RAW"
	AssetThumb     AssetKind = "THUMB"
	AssetAnnotated AssetKind = "ANNOTATED"
)

type assetInfo struct {
	filename    string
	contentType string
}

var assetKinds = map[AssetKind]assetInfo{
	AssetPicture:   {filename: "picture.jpg", contentType: "image/jpeg"},
	AssetRaw:       {filename: "raw.fits", contentType: "image/fits"},
	AssetThumb:     {filename: "thumb.jpg", contentType: "image/jpeg"},
	AssetAnnotated: {filename: "annotated.jpg", contentType: "image/jpeg"},
}

// Valid reports whether k is one of the known asset kinds.
func (k AssetKind) Valid() bool {
	_, ok := assetKinds[k]
	return ok
}

// Filename is the name of the file holding the asset inside the picture directory.
func (k AssetKind) Filename() string {
	return assetKinds[k].filename
}

// ContentType is the MIME type the asset is served with.
func (k AssetKind) ContentType() string {
	if info, ok := assetKinds[k]; ok {
		return info.contentType
	}
	return "application/octet-stream"
}
