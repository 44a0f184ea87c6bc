// Package vision detects text in receipt images with Google Cloud Vision.
package vision

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/SscSPs/pravaha_expense_app/internal/core/ports/providers"
	"github.com/SscSPs/pravaha_expense_app/internal/platform/metrics"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	vision "google.golang.org/api/vision/v1"
)

// Client implements providers.TextDetector.
type Client struct {
	svc *vision.Service
}

var _ providers.TextDetector = (*Client)(nil)

// NewClient builds a client from Application Default Credentials
// (GOOGLE_APPLICATION_CREDENTIALS or the metadata server).
func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	if len(opts) == 0 {
		creds, err := google.FindDefaultCredentials(ctx, vision.CloudVisionScope)
		if err != nil {
			return nil, fmt.Errorf("failed to find google credentials: %w", err)
		}
		opts = append(opts, option.WithCredentials(creds))
	}

	svc, err := vision.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// DetectText runs TEXT_DETECTION on image and returns the full annotation text.
// An image without any text yields an empty string.
func (c *Client) DetectText(ctx context.Context, image []byte) (text string, err error) {
	defer func() { metrics.ObserveUpstream("vision", err) }()

	req := &vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{{
			Image:    &vision.Image{Content: base64.StdEncoding.EncodeToString(image)},
			Features: []*vision.Feature{{Type: "TEXT_DETECTION"}},
		}},
	}

	resp, err := c.svc.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("vision annotate request failed: %w", err)
	}
	if len(resp.Responses) == 0 {
		return "", nil
	}

	res := resp.Responses[0]
	if res.Error != nil {
		return "", fmt.Errorf("vision annotate error %d: %s", res.Error.Code, res.Error.Message)
	}
	if res.FullTextAnnotation != nil && res.FullTextAnnotation.Text != "" {
		return res.FullTextAnnotation.Text, nil
	}
	if len(res.TextAnnotations) > 0 {
		return res.TextAnnotations[0].Description, nil
	}
	return "", nil
}
