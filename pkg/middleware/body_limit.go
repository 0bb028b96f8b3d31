package middleware

import "net/http"

// MaxRequestBodyBytes é o tamanho máximo aceito para o corpo das requisições
const MaxRequestBodyBytes int64 = 1 << 20

// BodyLimit limita o corpo da requisição; a leitura além do limite retorna erro no decode
func BodyLimit(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
