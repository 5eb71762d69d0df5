package api

// ListTags returns the popular tags known to the server.
func (c *Client) ListTags() ([]string, error) {
	data, err := c.get("/tags")
	if err != nil {
		return nil, err
	}
	env, err := decodeInto[tagsEnvelope](data)
	if err != nil {
		return nil, err
	}
	return env.Tags, nil
}
