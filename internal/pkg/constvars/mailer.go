package constvars

const (
	EmailHeaderFormat      = "From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\n"
	EmailMultipartHeader   = "Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n"
	EmailPartHeaderFormat  = "--%s\r\nContent-Type: %s\r\nContent-Transfer-Encoding: 8bit\r\n\r\n%s\r\n"
	EmailClosingBoundary   = "--%s--\r\n"
	EmailMultipartBoundary = "pwls-alternative-boundary"
	EmailFromAddressFormat = "%s <%s>"
	EmailHeaderCharset     = "utf-8"
)

// RabbitMQ publishing headers understood by the mailer worker.
const (
	RabbitMQHeaderMessageType     = "message_type"
	RabbitMQHeaderRequeueStrategy = "requeue_strategy"
	RabbitMQMessageTypeJSON       = "JSON"
	RabbitMQRequeueStrategyDrop   = "DROP"
)
