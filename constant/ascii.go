package constant

// AsciiArtLogo is the application banner printed in the root command help.
const AsciiArtLogo = `
  _ _           _ _       _
 | (_)_   _____| (_)_ __ | | __
 | | \ \ / / _ \ | | '_ \| |/ /
 | | |\ V /  __/ | | | | |   <
 |_|_| \_/ \___|_|_|_| |_|_|\_\
`
