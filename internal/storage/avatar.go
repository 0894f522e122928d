package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/barbermx/appointment-api/internal/config"
)

const avatarSize = 256

var ErrNotConfigured = errors.New("s3 bucket not configured")

// AvatarStore normaliza a foto de perfil (quadrada, webp) e sobe pro S3.
type AvatarStore struct {
	client *s3.Client
	bucket string
	region string
}

func NewAvatarStore(cfg *config.Config) (*AvatarStore, error) {
	if cfg.S3Bucket == "" {
		return nil, ErrNotConfigured
	}

	client := s3.New(s3.Options{
		Region: cfg.AWSRegion,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	})

	return &AvatarStore{
		client: client,
		bucket: cfg.S3Bucket,
		region: cfg.AWSRegion,
	}, nil
}

// Upload aceita JPEG ou PNG e devolve a URL pública do webp gerado.
func (s *AvatarStore) Upload(
	ctx context.Context,
	profileID uint,
	r io.Reader,
) (string, error) {

	src, _, err := image.Decode(r)
	if err != nil {
		return "", err
	}

	dst := image.NewRGBA(image.Rect(0, 0, avatarSize, avatarSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: 80}); err != nil {
		return "", err
	}

	key := fmt.Sprintf("avatars/%d.webp", profileID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
