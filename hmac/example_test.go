package hmac_test

import (
	"fmt"

	"github.com/codahale/blockhash/hashes/sha256"
	"github.com/codahale/blockhash/hmac"
)

func ExampleNew() {
	mac := hmac.New(sha256.New(), []byte("Jefe"))
	mac.Update([]byte("what do ya want for nothing?"))

	fmt.Printf("%x\n", mac.Digest())

	// Output:
	// 5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843
}

func ExampleEqual() {
	key := []byte("secret")
	tag := hmac.New(sha256.New(), key).DigestOf([]byte("message"))

	fmt.Println(hmac.Equal(tag, hmac.New(sha256.New(), key).DigestOf([]byte("message"))))
	fmt.Println(hmac.Equal(tag, hmac.New(sha256.New(), key).DigestOf([]byte("massage"))))

	// Output:
	// true
	// false
}
