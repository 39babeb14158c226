package v1

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"slices"

	"github.com/gabriel-vasile/mimetype"
	"github.com/postplus/postplus_api/internal/domain"
)

var (
	artUploadFields  = []string{"story", "feed", "thumbnail"}
	logoUploadFields = []string{"logo"}
)

// readUploads reads the file parts of a multipart body in request order.
// Only the first file of each field is kept; a file under any field not
// in allowed fails validation.
func readUploads(w http.ResponseWriter, r *http.Request, maxBytes int64, allowed []string) ([]domain.UploadFile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	reader, err := r.MultipartReader()
	if err != nil {
		return nil, domain.NewError(domain.ErrValidation, "request must be multipart/form-data")
	}

	var files []domain.UploadFile
	seen := make(map[string]bool, len(allowed))

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, uploadReadError(err)
		}

		file, keep, err := readPart(part, allowed, seen)
		_ = part.Close()
		if err != nil {
			return nil, err
		}

		if keep {
			files = append(files, file)
		}
	}

	if len(files) == 0 {
		return nil, domain.NewError(domain.ErrValidation, "no file uploaded, expected one of: %v", allowed)
	}

	return files, nil
}

func readPart(part *multipart.Part, allowed []string, seen map[string]bool) (domain.UploadFile, bool, error) {
	field := part.FormName()

	if part.FileName() == "" {
		return domain.UploadFile{}, false, nil
	}

	if !slices.Contains(allowed, field) {
		return domain.UploadFile{}, false, domain.NewError(domain.ErrValidation, "unexpected file field %q", field)
	}

	data, err := io.ReadAll(part)
	if err != nil {
		return domain.UploadFile{}, false, uploadReadError(err)
	}

	if seen[field] {
		return domain.UploadFile{}, false, nil
	}
	seen[field] = true

	contentType := part.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mimetype.Detect(data).String()
	}

	return domain.UploadFile{
		Field:       field,
		Filename:    part.FileName(),
		ContentType: contentType,
		Data:        data,
	}, true, nil
}

func uploadReadError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return domain.NewError(domain.ErrValidation, "upload exceeds %d bytes", maxBytesErr.Limit)
	}

	return domain.NewError(domain.ErrValidation, "malformed multipart body")
}
