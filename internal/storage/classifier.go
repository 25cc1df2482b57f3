package storage

// Bucket identifies the destination directory for an uploaded file
type Bucket string

// Upload buckets under the storage base path
const (
	BucketRoot   Bucket = ""
	BucketImages Bucket = "images"
	BucketMedia  Bucket = "media"
)

// Portrait and icon fields that belong under uploads/images
var imageFields = map[string]bool{
	"leader_image": true,
	"service_icon": true,
	"photo":        true,
	"image":        true,
}

// Document and media fields that belong under uploads/media
var mediaFields = map[string]bool{
	"news_image":              true,
	"announcement_attachment": true,
	"attachment":              true,
	"file":                    true,
}

// ClassifyField decides the bucket for an upload based on the form field
// name and whether the upload arrived on a news route. News featured
// images use the generic "image" field but are stored under media, so
// the news flag overrides the image-field classification.
func ClassifyField(field string, newsRoute bool) Bucket {
	if imageFields[field] && !newsRoute {
		return BucketImages
	}
	if mediaFields[field] || (field == "image" && newsRoute) {
		return BucketMedia
	}
	return BucketRoot
}
