package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const (
	CtxUserID  ctxKey = "usuarioID"
	CtxIsAdmin ctxKey = "isAdmin"
)

// tokenDoHeader extrai o token Bearer do cabeçalho Authorization.
func tokenDoHeader(r *http.Request) (string, bool) {
	const prefixo = "Bearer "
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, prefixo) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(h, prefixo))
	return token, token != ""
}

// UsuarioDoContexto devolve o ID do usuário autenticado na requisição.
func UsuarioDoContexto(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(CtxUserID).(uint)
	return id, ok
}

func adminDoContexto(r *http.Request) bool {
	admin, _ := r.Context().Value(CtxIsAdmin).(bool)
	return admin
}

// MiddlewareAutenticacao exige um token válido e injeta usuário e papel no
// contexto. Preflight CORS passa direto.
func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		raw, ok := tokenDoHeader(r)
		if !ok {
			http.Error(w, "Credenciais ausentes", http.StatusUnauthorized)
			return
		}
		claims, err := ParseAndValidate(raw)
		if err != nil {
			http.Error(w, "Sessão inválida ou expirada", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxUserID, claims.UserID)
		ctx = context.WithValue(ctx, CtxIsAdmin, claims.IsAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin restringe a rota a usuários administradores.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !adminDoContexto(r) {
			http.Error(w, "Acesso restrito a administradores", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
