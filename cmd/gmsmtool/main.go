// Command gmsmtool is a thin CLI wrapper over the sm3, sm4, and sm2
// packages. It exists as a smoke-test harness for the library, not as a
// packaging or distribution deliverable.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yueliang-sec/gmsm/sm2"
	"github.com/yueliang-sec/gmsm/sm3"
	"github.com/yueliang-sec/gmsm/sm4"
)

func main() {
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(flag.Args()) == 0 {
		log.Fatal().Msg("usage: gmsmtool hash|sm4|keygen|encrypt|decrypt|sign|verify ...")
	}

	var err error
	switch flag.Args()[0] {
	case "hash":
		err = runHash(flag.Args()[1:])
	case "sm4":
		err = runSM4(flag.Args()[1:])
	case "keygen":
		err = runKeygen(flag.Args()[1:])
	case "encrypt":
		err = runEncrypt(flag.Args()[1:])
	case "decrypt":
		err = runDecrypt(flag.Args()[1:])
	case "sign":
		err = runSign(flag.Args()[1:])
	case "verify":
		err = runVerify(flag.Args()[1:])
	default:
		log.Fatal().Str("command", flag.Args()[0]).Msg("unknown command")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func runHash(args []string) error {
	fs := flag.NewFlagSet("hash", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: gmsmtool hash <message>")
	}
	digest := sm3.Sum256([]byte(fs.Arg(0)))
	log.Debug().Str("message", fs.Arg(0)).Msg("computed H256 digest")
	fmt.Println(hex.EncodeToString(digest[:]))
	return nil
}

func runSM4(args []string) error {
	fs := flag.NewFlagSet("sm4", flag.ExitOnError)
	mode := fs.String("mode", "cbc", "block cipher mode: ecb|cbc|cfb|ofb|ctr")
	direction := fs.String("dir", "encrypt", "encrypt|decrypt")
	keyHex := fs.String("key", "", "32-hex-character key (16 bytes)")
	ivHex := fs.String("iv", "", "32-hex-character IV (16 bytes); ignored for ecb")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: gmsmtool sm4 -mode=... -dir=... -key=... [-iv=...] <data>")
	}
	if *keyHex == "" {
		return fmt.Errorf("-key is required")
	}

	m := sm4.Mode(strings.ToUpper(*mode))
	var out string
	var outBytes []byte
	var err error
	if *direction == "encrypt" {
		out, err = sm4.EncryptHex(m, *keyHex, *ivHex, []byte(fs.Arg(0)))
	} else {
		outBytes, err = sm4.DecryptHex(m, *keyHex, *ivHex, fs.Arg(0))
		out = string(outBytes)
	}
	if err != nil {
		return err
	}
	log.Debug().Str("mode", *mode).Str("dir", *direction).Msg("ran sm4")
	fmt.Println(out)
	return nil
}

func runKeygen(args []string) error {
	priv, pub, err := sm2.GenerateKey()
	if err != nil {
		return err
	}
	log.Debug().Msg("generated EC256 key pair")
	fmt.Println("private:", priv.HexString())
	fmt.Println("public: ", pub.HexString())
	return nil
}

func runEncrypt(args []string) error {
	fs := flag.NewFlagSet("encrypt", flag.ExitOnError)
	pubHex := fs.String("pub", "", "130-hex-character uncompressed public key")
	fs.Parse(args)
	if fs.NArg() != 1 || *pubHex == "" {
		return fmt.Errorf("usage: gmsmtool encrypt -pub=<hex> <plaintext>")
	}
	pub, err := sm2.ParsePublicKey(*pubHex)
	if err != nil {
		return err
	}
	ct, err := sm2.Encrypt(pub, []byte(fs.Arg(0)), sm2.C1C3C2)
	if err != nil {
		return err
	}
	log.Debug().Msg("encrypted under EC256 public key")
	fmt.Println(ct)
	return nil
}

func runDecrypt(args []string) error {
	fs := flag.NewFlagSet("decrypt", flag.ExitOnError)
	privHex := fs.String("priv", "", "64-hex-character private key")
	fs.Parse(args)
	if fs.NArg() != 1 || *privHex == "" {
		return fmt.Errorf("usage: gmsmtool decrypt -priv=<hex> <ciphertext-hex>")
	}
	priv, err := sm2.ParsePrivateKey(*privHex)
	if err != nil {
		return err
	}
	pt, err := sm2.Decrypt(priv, fs.Arg(0), sm2.C1C3C2)
	if err != nil {
		return err
	}
	log.Debug().Msg("decrypted EC256 ciphertext")
	fmt.Println(string(pt))
	return nil
}

func runSign(args []string) error {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	privHex := fs.String("priv", "", "64-hex-character private key")
	pubHex := fs.String("pub", "", "130-hex-character uncompressed public key")
	fs.Parse(args)
	if fs.NArg() != 1 || *privHex == "" || *pubHex == "" {
		return fmt.Errorf("usage: gmsmtool sign -priv=<hex> -pub=<hex> <message>")
	}
	priv, err := sm2.ParsePrivateKey(*privHex)
	if err != nil {
		return err
	}
	pub, err := sm2.ParsePublicKey(*pubHex)
	if err != nil {
		return err
	}
	sig, err := sm2.Sign(priv, pub, []byte(fs.Arg(0)), nil)
	if err != nil {
		return err
	}
	log.Debug().Msg("produced EC256 signature")
	fmt.Println(sig.EncodeDER())
	return nil
}

func runVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	pubHex := fs.String("pub", "", "130-hex-character uncompressed public key")
	sigHex := fs.String("sig", "", "DER-encoded signature, hex")
	fs.Parse(args)
	if fs.NArg() != 1 || *pubHex == "" || *sigHex == "" {
		return fmt.Errorf("usage: gmsmtool verify -pub=<hex> -sig=<hex> <message>")
	}
	pub, err := sm2.ParsePublicKey(*pubHex)
	if err != nil {
		return err
	}
	sig, err := sm2.ParseDER(*sigHex)
	if err != nil {
		return err
	}
	ok := sm2.Verify(pub, []byte(fs.Arg(0)), sig, nil)
	log.Debug().Bool("valid", ok).Msg("checked EC256 signature")
	if !ok {
		fmt.Println("invalid")
		os.Exit(1)
	}
	fmt.Println("valid")
	return nil
}
