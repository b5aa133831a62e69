package cart

import (
	"sync"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/distribution-pos/internal/domain/entity"
)

// session carrito de una sesión: un outlet y sus líneas en orden de inserción.
type session struct {
	outletCode string
	lines      []entity.CartLine
}

// sessionStore estado en memoria de carritos por sesión. Las líneas son efímeras
// por contrato: no hay persistencia ni expiración; el carrito muere con el submit,
// el clear o el proceso.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*session)}
}

// addLine acumula cantidad si el barcode ya está (refrescando el precio resuelto),
// si no añade al final. Cambiar de outlet reinicia el carrito de la sesión.
func (s *sessionStore) addLine(sessionID, outletCode string, line entity.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[sessionID]
	if sess == nil || sess.outletCode != outletCode {
		sess = &session{outletCode: outletCode}
		s.sessions[sessionID] = sess
	}
	for i := range sess.lines {
		if sess.lines[i].Barcode == line.Barcode {
			sess.lines[i].Quantity += line.Quantity
			sess.lines[i].EditableDP = line.EditableDP
			sess.lines[i].EditableTP = line.EditableTP
			return
		}
	}
	sess.lines = append(sess.lines, line)
}

func (s *sessionStore) overridePrice(sessionID, barcode string, dp, tp *decimal.Decimal) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[sessionID]
	if sess == nil {
		return false
	}
	for i := range sess.lines {
		if sess.lines[i].Barcode == barcode {
			if dp != nil {
				sess.lines[i].EditableDP = *dp
			}
			if tp != nil {
				sess.lines[i].EditableTP = *tp
			}
			return true
		}
	}
	return false
}

func (s *sessionStore) removeLine(sessionID, barcode string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[sessionID]
	if sess == nil {
		return false
	}
	for i := range sess.lines {
		if sess.lines[i].Barcode == barcode {
			sess.lines = append(sess.lines[:i], sess.lines[i+1:]...)
			return true
		}
	}
	return false
}

func (s *sessionStore) clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// snapshot copia de las líneas (para iterar sin lock).
func (s *sessionStore) snapshot(sessionID string) (string, []entity.CartLine) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess := s.sessions[sessionID]
	if sess == nil {
		return "", nil
	}
	out := make([]entity.CartLine, len(sess.lines))
	copy(out, sess.lines)
	return sess.outletCode, out
}
