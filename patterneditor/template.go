package patterneditor

// Template is the starter rule offered for new filters. It matches POST
// requests to registration endpoints carrying an overlong username.
const Template = `# make some changes here or it will not be updated
def username(self, stream: HTTPStream):
    message = stream.current_http_message
    if 'register' in message.url and 'POST' in message.method:
        username = message.parameters.get('username')
        if len(username) > 10:
            return True
    else:
        return False
`
