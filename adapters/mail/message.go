package mail

import (
	"bytes"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio/internal/application/service"
)

var headerSanitizer = strings.NewReplacer("\r", "", "\n", "")

// maxHeaderLine is the recommended RFC 5322 line length. Folding keeps every
// header line within it, well under the hard 998 limit.
const maxHeaderLine = 78

// maxPlainWord is the longest unencoded subject word that still fits on a
// folded continuation line.
const maxPlainWord = maxHeaderLine - 1

// buildMessage renders an RFC 5322 message with a single quoted-printable
// HTML part. Header values are stripped of CR/LF since Reply-To and Subject
// come from the contact form.
func buildMessage(email service.Email, domain string, now time.Time) ([]byte, error) {
	var buf bytes.Buffer

	header := func(k, v string) {
		buf.WriteString(foldHeader(k, headerSanitizer.Replace(v)))
		buf.WriteString("\r\n")
	}

	header("From", email.From)
	header("To", email.To)
	if email.ReplyTo != "" {
		header("Reply-To", email.ReplyTo)
	}
	header("Subject", encodeSubject(headerSanitizer.Replace(email.Subject)))
	header("Date", now.Format(time.RFC1123Z))
	header("Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), domain))
	header("MIME-Version", "1.0")
	header("Content-Type", `text/html; charset="UTF-8"`)
	header("Content-Transfer-Encoding", "quoted-printable")
	buf.WriteString("\r\n")

	qp := quotedprintable.NewWriter(&buf)
	if _, err := qp.Write([]byte(email.HTMLBody)); err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	if err := qp.Close(); err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	return buf.Bytes(), nil
}

// encodeSubject Q-encodes non-ASCII text and splits any word too long to fold
// into encoded-words, which decoders join back without the separating space.
func encodeSubject(subject string) string {
	words := strings.Split(mime.QEncoding.Encode("utf-8", subject), " ")
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) <= maxPlainWord {
			out = append(out, w)
			continue
		}
		out = append(out, splitEncodedWords(w)...)
	}
	return strings.Join(out, " ")
}

// splitEncodedWords only sees printable ASCII: anything else has already
// been turned into encoded-words by mime.QEncoding.
func splitEncodedWords(word string) []string {
	const chunk = 20

	var words []string
	for len(word) > 0 {
		n := min(chunk, len(word))
		var b strings.Builder
		b.WriteString("=?utf-8?q?")
		for i := 0; i < n; i++ {
			c := word[i]
			if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') || strings.IndexByte("!*+-/", c) >= 0 {
				b.WriteByte(c)
			} else {
				fmt.Fprintf(&b, "=%02X", c)
			}
		}
		b.WriteString("?=")
		words = append(words, b.String())
		word = word[n:]
	}
	return words
}

// foldHeader renders "Key: value", breaking at spaces so lines stay within
// maxHeaderLine where the value allows it.
func foldHeader(key, value string) string {
	var b strings.Builder
	b.WriteString(key)
	b.WriteString(":")
	lineLen := b.Len()

	for i, w := range strings.Split(value, " ") {
		if i > 0 && lineLen+1+len(w) > maxHeaderLine {
			b.WriteString("\r\n")
			lineLen = 0
		}
		b.WriteString(" ")
		b.WriteString(w)
		lineLen += 1 + len(w)
	}
	return b.String()
}

// senderDomain picks the domain half of an address for Message-ID.
func senderDomain(addr string) string {
	if i := strings.LastIndex(addr, "@"); i >= 0 && i < len(addr)-1 {
		return strings.TrimSuffix(addr[i+1:], ">")
	}
	return "localhost"
}
