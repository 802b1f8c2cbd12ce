// Package rewrite applies a proxy link fixer to the anchors of an HTML
// document. Frontend proxies that fold a wiki's identity into extra path
// segments serve pages whose root-relative links are missing that prefix;
// rewriting restores it so the links work outside the proxy's own pages.
package rewrite
