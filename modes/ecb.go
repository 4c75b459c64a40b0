package modes

import "crypto/cipher"

type ecbEncrypter struct {
	b  cipher.Block
	bs int
}

type ecbDecrypter struct {
	b  cipher.Block
	bs int
}

// NewECBEncrypter returns a cipher.BlockMode that encrypts in electronic
// codebook mode. It exists for callers that already speak cipher.BlockMode;
// EncryptECB is the allocating equivalent.
func NewECBEncrypter(b cipher.Block) cipher.BlockMode {
	return &ecbEncrypter{b: b, bs: b.BlockSize()}
}

// NewECBDecrypter returns a cipher.BlockMode that decrypts in electronic
// codebook mode.
func NewECBDecrypter(b cipher.Block) cipher.BlockMode {
	return &ecbDecrypter{b: b, bs: b.BlockSize()}
}

func (x *ecbEncrypter) BlockSize() int { return x.bs }

func (x *ecbEncrypter) CryptBlocks(dst, src []byte) {
	cryptBlocks(x.bs, dst, src, x.b.Encrypt)
}

func (x *ecbDecrypter) BlockSize() int { return x.bs }

func (x *ecbDecrypter) CryptBlocks(dst, src []byte) {
	cryptBlocks(x.bs, dst, src, x.b.Decrypt)
}

func cryptBlocks(bs int, dst, src []byte, crypt func(dst, src []byte)) {
	if len(src)%bs != 0 {
		panic("modes: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("modes: output smaller than input")
	}
	for len(src) > 0 {
		crypt(dst[:bs], src[:bs])
		src = src[bs:]
		dst = dst[bs:]
	}
}
