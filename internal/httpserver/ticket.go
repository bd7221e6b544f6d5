// internal/httpserver/ticket.go
//
// Board tickets: HS256 JWTs that carry a board between requests.
// Clients receive a ticket with every generated board and send it back to
// solve, check or hint. The signature stops a client from swapping letters.
//
// Claims: "board" (Board.String), "size", "difficulty", "iat", "exp".

package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/boggle/internal/board"
	"github.com/robalobadob/boggle/internal/generator"
)

var errInvalidTicket = errors.New("invalid ticket")

// signTicket issues a ticket for b.
func (s *Server) signTicket(b *board.Board, d generator.Difficulty) (string, time.Time, error) {
	now := s.opts.Now()
	exp := now.Add(s.opts.TicketTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"board":      b.String(),
		"size":       b.Size(),
		"difficulty": string(d),
		"iat":        now.Unix(),
		"exp":        exp.Unix(),
	})
	ss, err := t.SignedString(s.opts.TicketSecret)
	return ss, exp, err
}

// parseTicket verifies a ticket and rebuilds its board.
func (s *Server) parseTicket(tok string) (*board.Board, error) {
	if tok == "" {
		return nil, errInvalidTicket
	}
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return s.opts.TicketSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.opts.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, errInvalidTicket
	}
	key, _ := claims["board"].(string)
	b, err := board.Parse(key)
	if err != nil {
		return nil, errInvalidTicket
	}
	return b, nil
}

// ticketFrom returns the ticket from the request body, falling back to an
// "Authorization: Bearer" header.
func ticketFrom(r *http.Request, body string) string {
	if body != "" {
		return body
	}
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// boardFromRequest resolves the request's ticket or writes a 401.
func (s *Server) boardFromRequest(w http.ResponseWriter, r *http.Request, body string) (*board.Board, bool) {
	b, err := s.parseTicket(ticketFrom(r, body))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid_ticket", "")
		return nil, false
	}
	return b, true
}
