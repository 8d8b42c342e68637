package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/nPaBwaYT/des/des"
	"github.com/nPaBwaYT/des/internal/helpers"
	"github.com/nPaBwaYT/des/value"
)

/*
Шифрование блока (ключ и текст в hex)
go run . -e -k=0x133457799BBCDFF1 0x0123456789ABCDEF

Дешифрование блока с выводом в виде текста
go run . -d -k=0x133457799BBCDFF1 -f=text 0x85E813540F0AB405

Ключ и текст: десятичное число, 0x hex, 0b двоичное, строка из 8 ASCII символов или путь к файлу
Форматы вывода при дешифровании: hex, binary, octal, decimal, text
Флаг -v печатает ключ и все 16 раундовых ключей
*/

func main() {
	encryptFlag := flag.Bool("e", false, "Режим шифрования")
	decryptFlag := flag.Bool("d", false, "Режим дешифрования")
	keyFlag := flag.String("k", "", "Ключ: число, 0x hex, 0b двоичное, 8 ASCII символов или путь к файлу")
	formatFlag := flag.String("f", "hex", "Формат вывода при дешифровании: hex, binary, octal, decimal, text")
	verboseFlag := flag.Bool("v", false, "Печатать раундовые ключи")

	flag.Parse()

	if *encryptFlag == *decryptFlag {
		fmt.Println("Использование:")
		fmt.Println("  Шифрование: des -e -k=KEY TEXT")
		fmt.Println("  Дешифрование: des -d -k=KEY [-f=hex|binary|octal|decimal|text] TEXT")
		fmt.Println("\nФлаги:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Ошибка: необходимо указать ровно один текст")
		os.Exit(1)
	}

	if *keyFlag == "" {
		log.Fatalf("Ошибка: ключ не задан (-k)")
	}

	output, err := run(*encryptFlag, *keyFlag, args[0], *formatFlag, *verboseFlag, os.Stderr)
	if err != nil {
		log.Fatalf("Ошибка: %v", err)
	}

	fmt.Println(output)
}

// run parses the inputs and performs one block operation. Encryption always
// prints hex; the format only applies to decryption.
func run(encrypt bool, keyArg, textArg, formatArg string, verbose bool, debugOut io.Writer) (string, error) {
	key, err := value.Parse(keyArg)
	if err != nil {
		return "", fmt.Errorf("ключ: %w", err)
	}

	text, err := value.Parse(textArg)
	if err != nil {
		return "", fmt.Errorf("текст: %w", err)
	}

	format, err := value.ParseOutputFormat(formatArg)
	if err != nil {
		return "", err
	}

	cipher := des.NewDESCipher(key)

	if verbose {
		logger := helpers.NewLogger("des", debugOut, true)
		logger.Debug("key", cipher.Key().String())
		for i, sk := range cipher.Subkeys() {
			logger.Debug(fmt.Sprintf("K%-2d", i+1), fmt.Sprintf("%012X", sk), des.FormatBinary(sk, 48))
		}
	}

	if encrypt {
		return value.Format(cipher.Encrypt(text), value.FormatHex), nil
	}
	return value.Format(cipher.Decrypt(text), format), nil
}
