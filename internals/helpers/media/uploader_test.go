package media

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	fail bool

	lastKey  string
	lastBody []byte
}

func (f *fakePutter) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.fail {
		return nil, errors.New("acesso negado")
	}
	f.lastKey = *in.Key
	b, _ := io.ReadAll(in.Body)
	f.lastBody = b
	return &s3.PutObjectOutput{}, nil
}

func TestUploadToObjectStore(t *testing.T) {
	putter := &fakePutter{}
	up := NewWithClient("meu-bucket", "sa-east-1", putter)

	url := up.Upload(context.Background(), "fotos", "perfil.png", []byte("conteudo"))
	require.NotNil(t, url)

	assert.True(t, strings.HasPrefix(*url, "https://meu-bucket.s3.sa-east-1.amazonaws.com/fotos/"))
	assert.True(t, strings.HasSuffix(*url, "_perfil.png"))
	assert.Equal(t, []byte("conteudo"), putter.lastBody)
	assert.True(t, strings.HasPrefix(putter.lastKey, "fotos/"))
}

func TestUploadDegradesToInlineWithoutGateway(t *testing.T) {
	up := NewWithClient("", "", nil)

	ref := up.Upload(context.Background(), "atestados", "atestado.txt", []byte("pequeno"))
	require.NotNil(t, ref)
	assert.True(t, strings.HasPrefix(*ref, "data:"))
	assert.Contains(t, *ref, ";base64,")
}

func TestUploadDegradesToInlineOnPutFailure(t *testing.T) {
	up := NewWithClient("meu-bucket", "sa-east-1", &fakePutter{fail: true})

	ref := up.Upload(context.Background(), "fotos", "perfil.png", []byte("pequeno"))
	require.NotNil(t, ref)
	assert.True(t, strings.HasPrefix(*ref, "data:"))
}

func TestUploadLargeFileWithoutGatewayReturnsNil(t *testing.T) {
	up := NewWithClient("", "", nil)

	big := bytes.Repeat([]byte("x"), maxInlineSize+1)
	assert.Nil(t, up.Upload(context.Background(), "fotos", "grande.bin", big))
}

func TestUploadEmptyDataReturnsNil(t *testing.T) {
	up := NewWithClient("meu-bucket", "sa-east-1", &fakePutter{})
	assert.Nil(t, up.Upload(context.Background(), "fotos", "vazio.bin", nil))
}

func TestObjectKeyNormalizesName(t *testing.T) {
	key := objectKey("documentos/", "meu arquivo.pdf")
	assert.True(t, strings.HasPrefix(key, "documentos/"))
	assert.True(t, strings.HasSuffix(key, "_meu_arquivo.pdf"))
	assert.NotContains(t, key, " ")
}
