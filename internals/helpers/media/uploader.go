// Package media publica anexos binários (fotos, logos, atestados) no object
// store e degrada para referência inline quando o upload não é possível.
package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Arquivos acima desse tamanho não podem virar referência inline.
const maxInlineSize = 512 * 1024

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Uploader struct {
	bucket string
	region string
	client objectPutter
}

// New monta o uploader. Com bucket vazio o gateway fica não configurado e
// todo upload degrada direto para inline/nulo.
func New(ctx context.Context, bucket, region string) *Uploader {
	up := &Uploader{bucket: bucket, region: region}
	if bucket == "" {
		return up
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		log.Printf("[WARN] media: credenciais S3 indisponíveis: %v", err)
		return up
	}
	up.client = s3.NewFromConfig(cfg)
	return up
}

// NewWithClient existe para os testes injetarem um client falso.
func NewWithClient(bucket, region string, client objectPutter) *Uploader {
	return &Uploader{bucket: bucket, region: region, client: client}
}

func (u *Uploader) configured() bool { return u.bucket != "" && u.client != nil }

// Upload envia o binário e devolve a URL pública. Em falha (ou gateway não
// configurado) arquivos pequenos viram data-URL inline; grandes devolvem
// nil. Nunca devolve erro: o save do chamador segue sem a referência.
func (u *Uploader) Upload(ctx context.Context, dir, filename string, data []byte) *string {
	if len(data) == 0 {
		return nil
	}
	contentType := sniffContentType(data)

	if u.configured() {
		key := objectKey(dir, filename)
		_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(u.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(contentType),
		})
		if err == nil {
			url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
			return &url
		}
		log.Printf("[WARN] media: upload falhou (%s/%s): %v", dir, filename, err)
	}

	if len(data) > maxInlineSize {
		log.Printf("[WARN] media: arquivo %s grande demais para inline (%d bytes), seguindo sem referência", filename, len(data))
		return nil
	}
	inline := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
	return &inline
}

func sniffContentType(data []byte) string {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return http.DetectContentType(head)
}

func objectKey(dir, filename string) string {
	dir = strings.Trim(dir, "/")
	base := strings.ReplaceAll(strings.TrimSpace(filename), " ", "_")
	if base == "" {
		base = "arquivo"
	}
	stamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s_%s_%s", dir, stamp, uuid.NewString()[:8], base)
}
