package notify

import "fmt"

// orderBody is the fixed notification layout. The only interpolated
// value is the title, which callers of renderOrderBody must already
// have escaped.
const orderBody = `
<div style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; max-width: 600px; margin: 20px auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 8px;">
  <div style="text-align: center; padding-bottom: 20px; border-bottom: 1px solid #e0e0e0;">
    <h1 style="color: #333; font-size: 24px;">🔔 Activación Pendiente</h1>
  </div>
  <div style="padding: 20px 0;">
    <p style="font-size: 16px; color: #555; line-height: 1.6;">Hola,</p>
    <p style="font-size: 16px; color: #555; line-height: 1.6;">
      Se ha registrado un nuevo pedido en el sistema y requiere tu atención.
    </p>
    <div style="background-color: #f9f9f9; padding: 15px; border-radius: 6px; margin: 20px 0; font-size: 18px;">
      <strong style="color: #333;">🎬 Título de la Película:</strong>
      <span style="color: #0056b3;">%s</span>
    </div>
    <p style="font-size: 16px; color: #555; line-height: 1.6;">
      Por favor, accede al panel de administración de <strong>FullTV</strong> para verificar y activar la película.
    </p>
  </div>
  <div style="text-align: center; padding-top: 20px; border-top: 1px solid #e0e0e0; font-size: 12px; color: #999;">
    <p>Este es un correo generado automáticamente. No es necesario responder.</p>
  </div>
</div>
`

func renderOrderBody(escapedTitle string) string {
	return fmt.Sprintf(orderBody, escapedTitle)
}
